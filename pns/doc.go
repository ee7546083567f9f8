// Package pns rounds numeric vectors to the nearest member of a Preferred
// Number Series (PNS), producing histogram-style bin edges and per-bin
// occupancy counts along the way.
//
// 🚀 What is a Preferred Number Series?
//
//	A standardized discrete set of "nice" values used in engineering to
//	constrain component selection, repeating every decade:
//	  • Electronic IEC 60063 E-series (resistors, capacitors, zeners...)
//	  • Renard R-series (ISO 3, defined to three significant digits,
//	    with once- and twice-rounded variants R′ / R″)
//	  • The 1-2-5 series (coinage, graph axes, packaging)
//	  • Custom decade-repeating vectors, e.g. [25, 75]
//	  • Custom monotonic series functions, e.g. f(x) = 2^x
//
// ✨ Key features:
//   - inbuilt tokens: E6..E192, R5..R80, R'5..R'40, R"5..R"20, "125"
//   - per-token default tolerance biasing the selection edges
//   - minimal spanning series, edges (len P+1) and counts (len P) returned
//     alongside the rounded vector — ready for bar/histogram plotting
//   - function-mode series solved by bounded integer bisection, with
//     per-element failure reporting instead of an all-or-nothing error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/prefnum/pns"
//
//	s, err := pns.New("E12")
//	if err != nil { ... }                    // ErrUnrecognizedSeries
//	res, err := pns.Round([]float64{514, 7.6, 37, 0.9}, s)
//	// res.Rounded = [560, 8.2, 39, 0.82]
//	// res.Series  = minimal spanning subset covering 0.9..514
//	// res.Edges   = len(res.Series)+1 strictly increasing boundaries
//	// res.Counts  = occupancy per series value
//
// Rounding and tolerance:
//
//	The edge between two adjacent series values v1 < v2 with tolerance tol
//	is ((1+tol)·v1 + (1-tol)·v2)/2 — the midpoint between the tolerance
//	band limits, not the arithmetic midpoint. With tol = 0 the two
//	coincide. Bins are half-open lower-inclusive [edge_i, edge_{i+1}):
//	a value exactly on an edge joins the bin above it.
//
// Zero is a legitimate sentinel for physical quantities: zero-valued
// inputs always round to zero and are never matched against the series.
//
// Performance:
//
//   - Fixed-list series: O(A·log(D·N)) for A inputs, N series values and
//     D spanned decades (binary search over precomputed edges).
//   - Function series:   O(A·log(range)) via integer bisection.
//
// See example_test.go for worked examples including the documented answer
// vectors for E6, E12, R10 and 1-2-5.
package pns
