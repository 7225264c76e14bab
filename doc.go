// SPDX-License-Identifier: MIT

// Package lvstream post-processes particle and field-line traces: it seeds
// particles over a dataset, scores advected streamlines by discrete
// curvature, and compacts the survivors into a dense polyline set.
//
// 🚀 What is inside?
//
//	geom/       — Point (gonum r3.Vec), Range and Bounds
//	csr/        — sentinel-terminated polyline offsets, scan, Select, Gather
//	curvature/  — Menger curvature per interior point
//	linefilter/ — parallel per-line max/sum curvature keep test + summary
//	compact/    — drop rejected lines, renumber points, keep a point map
//	seed/       — uniform, random, single, copies, from-coordinates and
//	              charged-particle seeding with deterministic RNG
//	dataset/    — uniform grid and polydata with named point fields, CFL step
//	vtkio/      — legacy ASCII VTK reader and writer
//	pipeline/   — advect → filter → compact with slog, Prometheus, OpenTelemetry
//	config/     — YAML run configuration with validation and env overrides
//	cmd/lvstream — the seed, filter and cfl commands
//
// Quick ASCII example:
//
//	line 0: ●──●──●        straight, curvature 0   → dropped
//	line 1: ●──●           right angle, curvature √2 → kept
//	           │
//	           ●
//
//	go install github.com/katalvlaran/lvstream/cmd/lvstream@latest
package lvstream
