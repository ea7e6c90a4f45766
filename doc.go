// Package digeo is your in-memory toolbox for exact digital geometry —
// analyzing shapes made of integer lattice points without a single
// floating-point drift.
//
// 🚀 What is digeo?
//
//	A modern, exact-arithmetic, zero-float library that brings together:
//		• Lattice primitives: integer points, vectors, dot products, GCD, domains
//		• Bounded lattice polytopes: half-space cuts, exact point counting,
//		  interior/boundary classification
//		• Pick's-theorem validation helpers for 2D polygons
//		• Stern–Brocot tree: navigate all irreducible fractions in O(1) per step
//		• Arithmetic digital straight segments: incremental DSS recognition
//		• Cell geometry: Khalimsky-coded cells and cell covers of digital sets
//
// ✨ Why choose digeo?
//
//   - Exact by construction – int64 fast paths, big.Int fallbacks, never a rounding error
//   - Rock-solid guarantees – every count satisfies its discrete-geometry invariant
//   - Pure Go – no cgo, no hidden deps
//   - Predictable costs – complexity documented on every exported operation
//
// Under the hood, everything is organized in small focused packages:
//
//	lattice/     — integer points, vectors, exact arithmetic & axis-aligned domains
//	polytope/    — bounded lattice polytopes: construction, cutting, counting
//	sternbrocot/ — the Stern–Brocot tree of irreducible fractions
//	dss/         — arithmetic digital straight segment recognition
//	cellgeom/    — Khalimsky cells and cell covers
//
// Quick ASCII example:
//
//	y
//	7 ▲
//	  │\
//	  │ \        the triangle (0,0)-(5,0)-(0,7) holds 25 lattice
//	  │  \       points: 13 on the boundary, 12 strictly inside,
//	0 └───▶ x    and Pick's theorem confirms its area is 17.5.
//	  0   5
//
// Dive into each package's doc.go for full contracts, complexity tables
// and worked examples.
//
//	go get github.com/katalvlaran/digeo
package digeo
