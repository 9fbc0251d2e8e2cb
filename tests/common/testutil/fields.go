//go:build unit || e2e

package testutil

// Field builds a request-body mutator for table-driven handler tests: a
// nil value deletes the key, anything else overwrites it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
