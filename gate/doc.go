// Package gate models fixed terminals on the grid's base layer.
//
// A Gate is immutable once created and identified by a 1-based index
// derived from its position in the input file (spec.md §3). Gates
// never move and are never overwritten; a Set simply collects them in
// input order and offers id-based and coordinate-based lookup.
package gate
