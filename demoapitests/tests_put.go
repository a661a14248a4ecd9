package demoapitests

import (
	"fmt"
	"net/http"

	"github.com/demoapi/demoapi-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func DoPutTests(t *T) {
	t.Run("update including id in body updates post", func(t *T) {
		body := servicedef.NewPost(5, 10, fakeTitle(7), fakeBody(2))
		var updated servicedef.Post
		resp := t.Put(postPath(body.ID.IntValue()), body, &updated)

		t.RequireStatus(resp, http.StatusOK)
		assert.Equal(t, body, updated)
	})

	t.Run("update without id in body updates post", func(t *T) {
		id := 8
		body := servicedef.Post{
			UserID: ldvalue.NewOptionalInt(10),
			Title:  ldvalue.NewOptionalString(fakeTitle(7)),
			Body:   ldvalue.NewOptionalString(fakeBody(2)),
		}
		var updated servicedef.Post
		resp := t.Put(postPath(id), body.AsObject(), &updated)

		t.RequireStatus(resp, http.StatusOK)
		assert.Equal(t, id, updated.ID.IntValue())
		assert.Equal(t, body.UserID, updated.UserID)
		assert.Equal(t, body.Title, updated.Title)
		assert.Equal(t, body.Body, updated.Body)
	})

	// PUT replaces the whole record, so fields left out of the body become null.
	t.Run("partial update leaves missing fields unset", func(t *T) {
		id := 8
		body := servicedef.Post{Title: ldvalue.NewOptionalString(fakeTitle(7))}
		var updated servicedef.Post
		resp := t.Put(postPath(id), body.AsObject(), &updated)

		t.RequireStatus(resp, http.StatusOK)
		assert.Equal(t, id, updated.ID.IntValue())
		assert.False(t, updated.UserID.IsDefined(), "userId should be unset but was %d", updated.UserID.IntValue())
		assert.Equal(t, body.Title, updated.Title)
		assert.False(t, updated.Body.IsDefined(), "body should be unset but was %q", updated.Body.StringValue())
	})

	// The service fails with a server error for these instead of 404 or 400.
	t.Run("update with invalid post id returns server error", func(t *T) {
		body := servicedef.NewPost(110, 1, fakeTitle(4), fakeBody(1))
		resp := t.Put(postPath(body.ID.IntValue()), body, nil)

		t.AssertStatus(resp, http.StatusInternalServerError)
	})

	t.Run("update with invalid user id returns server error", func(t *T) {
		body := servicedef.NewPost(5, 15, fakeTitle(6), fakeBody(2))
		resp := t.Put(postPath(body.ID.IntValue()), body, nil)

		t.AssertStatus(resp, http.StatusInternalServerError)
	})
}

func postPath(id int) string {
	return fmt.Sprintf("posts/%d", id)
}
