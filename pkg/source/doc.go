// Package source provides the parser adapter and signature extractor for
// checked TypeScript files.
//
// A Unit wraps one file's raw text and its lazily parsed tree-sitter tree.
// Extraction is best-effort: a malformed file yields partial results, and
// every accessor treats an absent expected node as "not present" rather than
// failing. Nothing in this package touches the filesystem or network.
//
// The extractor normalizes the two default-export spellings the scaffold
// discipline tolerates:
//
//	export default function handler() {}     // default keyword form
//	const handler = () => {};
//	export { handler as default };           // aliased export form
//
// Both resolve to the same DefaultExport value, including a single-hop,
// top-level-only identifier resolution through the unit's symbol table.
package source
