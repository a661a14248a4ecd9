// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different black-box API test suites.
//
// The general model is:
//
// 1. The test harness holds one HTTP client bound to the base URL of the service under
// test. Every test sends its requests through it, relative to that base URL.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for building the
// requests, choosing the shapes to decode responses into, and providing a domain-specific
// test API on top of the test context.
package framework
