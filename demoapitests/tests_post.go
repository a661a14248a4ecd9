package demoapitests

import (
	"fmt"
	"net/http"

	"github.com/demoapi/demoapi-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

// The demo service does not store anything, so every new record gets the ID after the last
// one in its fixed data set, whatever ID the request asked for.
const (
	nextPostID    = 101
	nextCommentID = 501
)

func DoPostTests(t *T) {
	t.Run("new post creates post", func(t *T) {
		body := servicedef.Post{
			UserID: ldvalue.NewOptionalInt(10),
			Title:  ldvalue.NewOptionalString(fakeTitle(4)),
			Body:   ldvalue.NewOptionalString(fakeBody(2)),
		}
		var created servicedef.Post
		resp := t.Post("posts", body.AsObject(), &created)

		t.RequireStatus(resp, http.StatusCreated)
		assert.Equal(t, nextPostID, created.ID.IntValue())
		assert.Equal(t, body.UserID, created.UserID)
		assert.Equal(t, body.Title, created.Title)
		assert.Equal(t, body.Body, created.Body)
	})

	for _, id := range []int{250, 1} {
		id := id
		name := "new id"
		if id <= nextPostID {
			name = "existing id"
		}
		t.Run(fmt.Sprintf("post with %s %d creates post with next id", name, id), func(t *T) {
			body := servicedef.NewPost(id, 10, fakeTitle(7), fakeBody(2))
			var created servicedef.Post
			resp := t.Post("posts", body, &created)

			t.RequireStatus(resp, http.StatusCreated)
			expected := body
			expected.ID = ldvalue.NewOptionalInt(nextPostID)
			assert.Equal(t, expected, created)
		})
	}

	// A record is created even though all of its data is null.
	t.Run("post without content creates empty post", func(t *T) {
		var created servicedef.Post
		resp := t.Post("posts", nil, &created)

		t.RequireStatus(resp, http.StatusCreated)
		assert.Equal(t, servicedef.Post{ID: ldvalue.NewOptionalInt(nextPostID)}, created)
	})

	t.Run("post with irrelevant body creates empty post", func(t *T) {
		body := ldvalue.ObjectBuild().
			Set("Item1", ldvalue.String("foo")).
			Set("Item2", ldvalue.String("bar")).
			Build()
		var created servicedef.Post
		resp := t.Post("posts", body, &created)

		t.RequireStatus(resp, http.StatusCreated)
		assert.Equal(t, servicedef.Post{ID: ldvalue.NewOptionalInt(nextPostID)}, created)
	})

	t.Run("new comment creates comment", func(t *T) {
		body := servicedef.Comment{
			PostID: ldvalue.NewOptionalInt(10),
			Email:  ldvalue.NewOptionalString(fakeEmail()),
			Name:   ldvalue.NewOptionalString(fakeTitle(7)),
			Body:   ldvalue.NewOptionalString(fakeBody(2)),
		}
		var created servicedef.Comment
		resp := t.Post(commentsPath(body), body.AsObject(), &created)

		t.RequireStatus(resp, http.StatusCreated)
		assert.Equal(t, nextCommentID, created.ID.IntValue())
		assert.Equal(t, body.PostID, created.PostID)
		assert.Equal(t, body.Email, created.Email)
		assert.Equal(t, body.Name, created.Name)
		assert.Equal(t, body.Body, created.Body)
	})

	for _, id := range []int{600, 50} {
		id := id
		name := "new id"
		if id <= nextCommentID {
			name = "existing id"
		}
		t.Run(fmt.Sprintf("comment with %s %d creates comment with next id", name, id), func(t *T) {
			body := servicedef.NewComment(id, 10, fakeTitle(7), fakeEmail(), fakeBody(2))
			var created servicedef.Comment
			resp := t.Post(commentsPath(body), body, &created)

			t.RequireStatus(resp, http.StatusCreated)
			expected := body
			expected.ID = ldvalue.NewOptionalInt(nextCommentID)
			assert.Equal(t, expected, created)
		})
	}

	t.Run("comment with invalid post id returns bad request", func(t *T) {
		body := servicedef.Comment{
			PostID: ldvalue.NewOptionalInt(999),
			Email:  ldvalue.NewOptionalString(fakeEmail()),
			Name:   ldvalue.NewOptionalString(fakeTitle(7)),
			Body:   ldvalue.NewOptionalString(fakeBody(2)),
		}
		resp := t.Post(commentsPath(body), body.AsObject(), nil)

		t.AssertStatus(resp, http.StatusBadRequest)
	})
}

func commentsPath(c servicedef.Comment) string {
	return fmt.Sprintf("posts/%d/comments", c.PostID.IntValue())
}
