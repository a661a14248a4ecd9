package demoapitests

import (
	"net/http"

	"github.com/demoapi/demoapi-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

var knownPostTitles = []struct {
	id    string
	title string
}{
	{"1", "sunt aut facere repellat provident occaecati excepturi optio reprehenderit"},
	{"25", "rem alias distinctio quo quis"},
	{"100", "at nam consequatur ea labore ea harum"},
}

func DoGetTests(t *T) {
	t.Run("all posts returns OK status", func(t *T) {
		var resources []servicedef.Resource
		resp := t.Get("posts", &resources)
		t.AssertStatus(resp, http.StatusOK)
	})

	t.Run("all posts headers", func(t *T) {
		for _, h := range []struct{ name, value string }{
			{"Content-Type", "application/json; charset=utf-8"},
			{"Connection", "keep-alive"},
		} {
			h := h
			t.Run(h.name, func(t *T) {
				resp := t.Get("posts", nil)
				assert.Equal(t, h.value, resp.HeaderValue(h.name), "missing or incorrect %s header", h.name)
			})
		}
	})

	t.Run("all posts returns resources", func(t *T) {
		var resources []servicedef.Resource
		resp := t.Get("posts", &resources)
		t.RequireStatus(resp, http.StatusOK)
		assert.GreaterOrEqual(t, len(resources), 0)
		for i, r := range resources {
			assert.True(t, r.ID.IsDefined(), "resource at index %d has no id", i)
		}
	})

	for _, p := range knownPostTitles {
		p := p
		t.Run("post "+p.id+" returns requested post", func(t *T) {
			var resource servicedef.Resource
			resp := t.Get("posts/"+p.id, &resource)
			t.RequireStatus(resp, http.StatusOK)
			assert.Equal(t, p.title, resource.Title.StringValue())
		})
	}

	t.Run("invalid post returns not found", func(t *T) {
		resp := t.Get("posts/0", nil)
		t.AssertStatus(resp, http.StatusNotFound)
	})
}
