// Package general provides project-wide hygiene rules that apply to every
// checked file regardless of category.
//
// Rules in this package:
//   - GN01: No source files directly at the project root
//   - GN02: No shell scripts anywhere
//   - GN03: Markdown only under docs/ or whitelisted root files
//   - GN04: Test files group all cases under one describe block
//   - GN05: Only the router imports from src/apis
package general
