package demoapitests

import (
	"github.com/demoapi/demoapi-contract-tests/framework"
)

// RunTestSuite runs every demo API test through the specified harness.
func RunTestSuite(
	harness *framework.TestHarness,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, harness)

		t.Run("GET", DoGetTests)
		t.Run("comments", DoCommentTests)
		t.Run("POST", DoPostTests)
		t.Run("PUT", DoPutTests)
		t.Run("DELETE", DoDeleteTests)
	})
}
