// SPDX-License-Identifier: MIT

// Package seed generates the initial particle set handed to advection.
//
// 🚀 Strategies (Config.Strategy):
//
//	uniform          nx×ny×nz lattice over the bounds, endpoints included
//	random           Count points drawn uniformly in the bounds
//	single           one particle at Point
//	singleCopies     Count particles at Point
//	fromCoordinates  one particle per source point
//
// GenerateCharged is the physical-attribute variant: it reads mass, charge,
// weighting and momentum arrays from the source, optionally converts
// momentum to SI and keeps only particles inside a sampling sub-box.
//
// ✨ Guarantees:
//   - IDs are dense 0..N-1 in generation order (x fastest for uniform)
//   - bounds default per axis to the source dataset's bounds
//   - dimension -1 means the source's native resolution on that axis
//   - no system entropy: Random uses RandomSeed (default 255) and
//     Subsample uses 314 unless WithSeed / WithRand override them
//
// ⚙️ Usage:
//
//	cfg := seed.DefaultConfig()
//	cfg.Dimensions = [3]int{16, 16, 1}
//	particles, err := seed.Generate(cfg, grid)
//
// Errors are ErrConfiguration (bad or incomplete parameters) and ErrData
// (the source lacks a required field, bounds or resolution).
package seed
