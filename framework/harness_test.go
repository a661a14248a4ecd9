package framework

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v3/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func requireRequest(t *testing.T, requestsCh <-chan httphelpers.HTTPRequestInfo) httphelpers.HTTPRequestInfo {
	select {
	case r := <-requestsCh:
		return r
	case <-time.After(time.Second):
		require.Fail(t, "timed out waiting for request")
		return httphelpers.HTTPRequestInfo{}
	}
}

func TestNewTestHarnessValidURL(t *testing.T) {
	h, err := NewTestHarness("https://example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", h.BaseURL())
}

func TestNewTestHarnessDoesNotContactService(t *testing.T) {
	// port 1 on localhost is not expected to be listening
	h, err := NewTestHarness("http://localhost:1", nil)
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestNewTestHarnessInvalidURL(t *testing.T) {
	for _, u := range []string{"", "   ", "not a url", "/relative/path", "ftp://example.com", "http://"} {
		t.Run(fmt.Sprintf("%q", u), func(t *testing.T) {
			_, err := NewTestHarness(u, nil)
			assert.Error(t, err)
		})
	}
}

func TestResolveURL(t *testing.T) {
	h, err := NewTestHarness("http://example.com/api", nil)
	require.NoError(t, err)

	for path, expected := range map[string]string{
		"posts":             "http://example.com/api/posts",
		"/posts":            "http://example.com/api/posts",
		"posts/1":           "http://example.com/api/posts/1",
		"comments?postId=1": "http://example.com/api/comments?postId=1",
	} {
		u, err := h.ResolveURL(path)
		require.NoError(t, err)
		assert.Equal(t, expected, u.String())
	}

	_, err = h.ResolveURL("http://other.com/posts")
	assert.Error(t, err)
}

func TestExecuteGetDecodesBody(t *testing.T) {
	headers := make(http.Header)
	headers.Set("X-Custom", "yes")
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithJSONResponse(item{ID: 3, Name: "three"}, headers))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, nil)
		require.NoError(t, err)

		var result item
		resp, err := h.Execute(NewRequest("GET", "items/3"), &result, nil)
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "yes", resp.HeaderValue("X-Custom"))
		assert.Equal(t, item{ID: 3, Name: "three"}, result)
		assert.NotEmpty(t, resp.RequestID)

		r := requireRequest(t, requestsCh)
		assert.Equal(t, "GET", r.Request.Method)
		assert.Equal(t, "/items/3", r.Request.URL.Path)
		assert.Equal(t, "application/json", r.Request.Header.Get("Accept"))
		assert.Equal(t, resp.RequestID, r.Request.Header.Get("X-Request-Id"))
		assert.Len(t, r.Body, 0)
	})
}

func TestExecuteSendsJSONBodyAndQuery(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(201))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, nil)
		require.NoError(t, err)

		req := NewRequest("POST", "/items").
			WithQuery("a", "1").
			WithHeader("X-Extra", "x").
			WithJSONBody(item{ID: 5, Name: "five"})
		resp, err := h.Execute(req, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		r := requireRequest(t, requestsCh)
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "1", r.Request.URL.Query().Get("a"))
		assert.Equal(t, "x", r.Request.Header.Get("X-Extra"))
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"id":5,"name":"five"}`, string(r.Body))
	})
}

func TestExecuteWithoutBodySendsNoContentType(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(201))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, nil)
		require.NoError(t, err)

		_, err = h.Execute(NewRequest("POST", "items"), nil, nil)
		require.NoError(t, err)

		r := requireRequest(t, requestsCh)
		assert.Equal(t, "", r.Request.Header.Get("Content-Type"))
		assert.Len(t, r.Body, 0)
	})
}

func TestExecuteEmptyBodyLeavesTargetUnchanged(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(404), func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, nil)
		require.NoError(t, err)

		result := item{ID: 99}
		resp, err := h.Execute(NewRequest("GET", "items/0"), &result, nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, item{ID: 99}, result)
	})
}

func TestExecuteDecodeErrorStillReturnsResponse(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/plain")
	handler := httphelpers.HandlerWithResponse(500, headers, []byte("oops"))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, nil)
		require.NoError(t, err)

		var result item
		resp, err := h.Execute(NewRequest("GET", "items"), &result, nil)
		require.Error(t, err)
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, "oops", decodeErr.Body)

		require.NotNil(t, resp)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, "text/plain", resp.HeaderValue("Content-Type"))
	})
}

func TestExecuteUnreachableServiceReturnsTransportError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	h, err := NewTestHarness("http://"+addr, nil)
	require.NoError(t, err)

	resp, err := h.Execute(NewRequest("GET", "posts"), nil, nil)
	assert.Nil(t, resp)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "GET", transportErr.Method)
	assert.Equal(t, "http://"+addr+"/posts", transportErr.URL)
}

func TestExecuteLogsToDebugLogger(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, nil)
		require.NoError(t, err)

		var logger CapturingLogger
		resp, err := h.Execute(NewRequest("DELETE", "posts/1"), nil, &logger)
		require.NoError(t, err)

		output := logger.Output()
		require.Len(t, output, 2)
		assert.Equal(t, "["+resp.RequestID+"] DELETE "+server.URL+"/posts/1", output[0].Message)
		assert.Contains(t, output[1].Message, "Response status 200")
	})
}

func TestExecuteLogsToHarnessLoggerAlongsideDebugLogger(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		var harnessLogger, testLogger CapturingLogger
		h, err := NewTestHarness(server.URL, &harnessLogger)
		require.NoError(t, err)

		resp, err := h.Execute(NewRequest("GET", "posts"), nil, &testLogger)
		require.NoError(t, err)

		expected := "[" + resp.RequestID + "] GET " + server.URL + "/posts"
		for _, output := range []CapturedOutput{harnessLogger.Output(), testLogger.Output()} {
			require.Len(t, output, 2)
			assert.Equal(t, expected, output[0].Message)
			assert.Contains(t, output[1].Message, "Response status 200")
		}
	})
}

func TestMultiLoggerSkipsNilTargets(t *testing.T) {
	var a, b CapturingLogger
	MultiLogger(nil, &a, nil, &b).Printf("x=%d", 1)
	assert.Equal(t, "x=1", a.Output()[0].Message)
	assert.Equal(t, "x=1", b.Output()[0].Message)

	MultiLogger(nil, nil).Printf("nothing")
	assert.Equal(t, Logger(&a), MultiLogger(nil, &a))
}

func TestHarnessIsSafeForConcurrentUse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Path", r.URL.Path)
		_, _ = w.Write(body)
	})

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, nil)
		require.NoError(t, err)

		const workers = 20
		const perWorker = 10
		var wg sync.WaitGroup
		errCh := make(chan error, workers*perWorker)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					sent := item{ID: w*perWorker + i, Name: fmt.Sprintf("worker-%d-%d", w, i)}
					path := fmt.Sprintf("items/%d", sent.ID)
					var got item
					resp, err := h.Execute(NewRequest("PUT", path).WithJSONBody(sent), &got, nil)
					if err != nil {
						errCh <- err
						continue
					}
					if got != sent || resp.HeaderValue("X-Path") != "/"+path {
						errCh <- fmt.Errorf("sent %+v to %s, got %+v from %s", sent, path, got, resp.HeaderValue("X-Path"))
					}
				}
			}(w)
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			assert.NoError(t, err)
		}
	})
}
