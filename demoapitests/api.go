package demoapitests

import (
	"net/http"

	"github.com/demoapi/demoapi-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// T represents a test or subtest in the demo API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, and with some extra features such as debug logging. Those
// features are provided by the lower-level framework package.
//
// Every T holds the shared harness, so tests only need to say what request to make. Transport
// and decoding problems cause the test to fail immediately.
//
// To make test assertions, use the assert and require packages, passing the *T as if it were
// a *testing.T.
type T struct {
	context *framework.Context
	harness *framework.TestHarness
}

func newTestScope(context *framework.Context, harness *framework.TestHarness) *T {
	return &T{context: context, harness: harness}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.harness))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Execute sends a request through the harness and decodes the response body into into, if it
// is not nil.
func (t *T) Execute(req framework.Request, into interface{}) *framework.Response {
	resp, err := t.harness.Execute(req, into, t.context.DebugLogger())
	require.NoError(t, err)
	return resp
}

// Get sends a GET request.
func (t *T) Get(path string, into interface{}) *framework.Response {
	return t.Execute(framework.NewRequest(http.MethodGet, path), into)
}

// Post sends a POST request. If body is nil, no body is sent.
func (t *T) Post(path string, body interface{}, into interface{}) *framework.Response {
	return t.Execute(framework.NewRequest(http.MethodPost, path).WithJSONBody(body), into)
}

// Put sends a PUT request.
func (t *T) Put(path string, body interface{}, into interface{}) *framework.Response {
	return t.Execute(framework.NewRequest(http.MethodPut, path).WithJSONBody(body), into)
}

// Delete sends a DELETE request.
func (t *T) Delete(path string) *framework.Response {
	return t.Execute(framework.NewRequest(http.MethodDelete, path), nil)
}

// RequireStatus fails the test immediately if the response status is not the expected one, so
// that assertions about the body are not made against an error response.
func (t *T) RequireStatus(resp *framework.Response, status int) {
	if resp.StatusCode != status {
		require.Fail(t, "unexpected response status",
			"expected %d %s but got %d %s; body: %s",
			status, http.StatusText(status), resp.StatusCode, http.StatusText(resp.StatusCode), string(resp.Body))
	}
}

// AssertStatus records a failure if the response status is not the expected one.
func (t *T) AssertStatus(resp *framework.Response, status int) bool {
	return assert.Equal(t, status, resp.StatusCode, "unexpected response status; body: %s", string(resp.Body))
}
