// Package component provides check rules for UI component modules under
// src/components.
//
// Rules in this package:
//   - CM01: Components use the .tsx extension
package component
