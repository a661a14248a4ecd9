package demoapitests

import (
	"net/http"

	"github.com/demoapi/demoapi-contract-tests/framework"
	"github.com/demoapi/demoapi-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

func DoCommentTests(t *T) {
	t.Run("comments for post are filtered by post id", func(t *T) {
		var comments []servicedef.Comment
		resp := t.Execute(framework.NewRequest(http.MethodGet, "comments").WithQuery("postId", "1"), &comments)
		t.RequireStatus(resp, http.StatusOK)
		assert.NotEmpty(t, comments)
		for i, c := range comments {
			assert.Equal(t, 1, c.PostID.OrElse(-1), "comment at index %d belongs to another post", i)
		}
	})
}
