// Package database provides check rules for database modules under
// src/databases.
//
// Rules in this package:
//   - DB01: File naming (conn./schema./auth. prefix)
//   - DB02: One directory per database, no deeper nesting
//   - DB03: File name matches its database directory
package database
