// Package api provides check rules for route handler modules under
// src/apis.
//
// Rules in this package:
//   - AP01: File naming (api. prefix)
//   - AP02: Exactly one default export
//   - AP03: Default export is a route-framework instantiation
//   - AP04: Route prefix starts with /api/
//   - AP05: Required imports (framework plus at least one controller)
package api
