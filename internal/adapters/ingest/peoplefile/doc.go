// Package peoplefile loads a people.Dataset from a JSON, CSV or gzip file
//
// Design choices:
// - Format comes from the last extension only; .gz is unwrapped first and the
//   remaining extension picks the parser.
// - Gzip input is decompressed into a scratch directory next to the source and
//   parsed from there; the copy is written to a .part file and renamed.
// - Both parsers produce the same raw string rows, so validation and numeric
//   parsing happen in one place regardless of format.
// - Any bad row fails the whole load; there is no partial dataset.
package peoplefile
