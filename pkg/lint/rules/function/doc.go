// Package function provides check rules for function modules under
// src/functions: pure (fn.), effectful (fx.) and transactional (tx.).
//
// Rules in this package:
//   - FN01: File naming (fn./fx./tx. prefix)
//   - FN02: Nesting depth
//   - FN03: Exactly one default export, a function
//   - FN04: Pure signature
//   - FN05: Effectful signature
//   - FN06: Transactional signature
//   - FN07: Type-only connection imports
//   - FN08: Portal database dependencies name discovered handles
//   - FN09: Tests import the matching mock database factory
package function
