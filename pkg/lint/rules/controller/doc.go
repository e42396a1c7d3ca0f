// Package controller provides check rules for controller modules under
// src/controllers.
//
// Rules in this package:
//   - CT01: File naming (ctrl. prefix)
//   - CT02: Exactly one default export, a function
//   - CT03: Two-parameter portal/args signature
//   - CT04: Explicit result-tuple return type
//   - CT05: Portal purity (no imported functions among capabilities)
package controller
