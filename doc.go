// Package prefnum is a small engineering-numerics toolbox: round values to
// Preferred Number Series and look up saturated-steam properties.
//
// 🚀 What is prefnum?
//
//	Two independent, stateless utilities under one roof:
//		• pns/   — round numeric vectors to the nearest member of a Preferred
//		  Number Series (IEC 60063 E-series, Renard R-series, 1-2-5, custom
//		  vectors, or monotonic series functions), with histogram-style bin
//		  edges and per-bin occupancy counts.
//		• steam/ — saturated-water thermodynamic properties by linear
//		  interpolation over the classic B.1.1 reference table: saturation
//		  pressure/temperature, vapor quality, quality-weighted mixture
//		  properties, phase classification.
//
// ✨ Why choose prefnum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, no globals, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Well-specified – every rounding edge and tie-break is documented
//
// Quick taste:
//
//	s, _ := pns.New("E12")
//	res, _ := pns.Round([]float64{514, 7.6, 37, 0.9}, s)
//	// res.Rounded = [560, 8.2, 39, 0.82]
//
//	p, _ := steam.SaturationPressure(100) // ≈ 101.35 kPa
//
// Dive into each package's doc.go for the full contract, examples and
// complexity notes.
//
//	go get github.com/katalvlaran/prefnum
package prefnum
