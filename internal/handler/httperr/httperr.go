// Package httperr shapes error responses for the rental API. Handlers call
// AbortWithError with a client-facing message; the original error rides
// along on the gin context for the logging and error middleware.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error envelope. Status is carried for the error
// middleware but never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError aborts the request with a JSON error body and records err
// as a public gin error. err must be non-nil; the cause is what the log
// line and any future monitoring hook see.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
