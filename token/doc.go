// Package token provides the lexical scanners for rson text: the
// whitespace/comment unit, numeric literals in four radixes, quoted
// strings with their escape forms, identifiers and tag names.
//
// Scanners operate on byte slices and return the length of the
// pattern they match, leaving cursor management to the parser.
// Positions are tracked as byte offsets; PosDoc maps them to
// line/column pairs and context snippets for error messages.
package token
