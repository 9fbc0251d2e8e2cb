// Package errs is the error vocabulary of the service: construction and
// annotation helpers over cockroachdb/errors. Usecases create sentinel
// errors with New, attach context with Wrap, and tag low-level failures
// with Mark so handlers can branch with errors.Is without losing the
// underlying cause or its stack.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg. A nil err stays nil so call sites can wrap
// unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates an error carrying a stack trace. Used for the package-level
// sentinels the usecase layer exposes.
func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match markErr under errors.Is while keeping err as the
// reported cause. A nil err collapses to the bare sentinel.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders the verbose form of err and returns at most
// maxLines of it, for log fields where a full dump is too noisy.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
