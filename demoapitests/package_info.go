// Package demoapitests contains the demo API contract tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to the demo API, such as the shared HTTP
// client and the test context, is in the lower-level framework package.
//
// Many expectations here are fixed facts about the public demo service (the titles of
// particular posts, the IDs it assigns to new records, the status codes it returns for bad
// input) rather than general rules of API design.
package demoapitests
