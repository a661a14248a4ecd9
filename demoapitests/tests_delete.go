package demoapitests

import (
	"net/http"
)

func DoDeleteTests(t *T) {
	// The service returns 200 with an empty object rather than 204.
	t.Run("existing post returns OK status", func(t *T) {
		resp := t.Delete("posts/10")
		t.AssertStatus(resp, http.StatusOK)
	})

	// Deleting something that does not exist still leaves it not existing.
	t.Run("invalid post returns OK status", func(t *T) {
		resp := t.Delete("posts/0")
		t.AssertStatus(resp, http.StatusOK)
	})
}
