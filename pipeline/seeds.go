// SPDX-License-Identifier: MIT
// Package: lvstream/pipeline

package pipeline

import (
	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/geom"
	"github.com/katalvlaran/lvstream/seed"
)

// Point field names written by the seed exporters.
const (
	FieldID        = "id"
	FieldMass      = "Mass"
	FieldCharge    = "Charge"
	FieldWeighting = "Weighting"
	FieldMomentum  = "Momentum"
	FieldSource    = "Source"
)

// SeedsToPolyData turns seeds into a point cloud with an "id" field.
func SeedsToPolyData(ps []seed.Particle) *dataset.PolyData {
	pts := make([]geom.Point, len(ps))
	ids := make([]float64, len(ps))
	for i, p := range ps {
		pts[i] = p.Pos
		ids[i] = float64(p.ID)
	}
	pd := &dataset.PolyData{Points: pts, Lines: csr.Empty()}
	pd.PointData.SetScalar(FieldID, ids)
	return pd
}

// ChargedSeedsToPolyData turns charged seeds into a point cloud carrying id,
// Mass, Charge, Weighting, Source and the Momentum vector.
func ChargedSeedsToPolyData(ps []seed.ChargedParticle) *dataset.PolyData {
	n := len(ps)
	var (
		pts    = make([]geom.Point, n)
		mom    = make([]geom.Point, n)
		ids    = make([]float64, n)
		mass   = make([]float64, n)
		charge = make([]float64, n)
		weight = make([]float64, n)
		source = make([]float64, n)
	)
	for i, p := range ps {
		pts[i] = p.Pos
		mom[i] = p.Momentum
		ids[i] = float64(p.ID)
		mass[i] = p.Mass
		charge[i] = p.Charge
		weight[i] = p.Weighting
		source[i] = float64(p.Source)
	}
	pd := &dataset.PolyData{Points: pts, Lines: csr.Empty()}
	pd.PointData.SetScalar(FieldID, ids)
	pd.PointData.SetScalar(FieldMass, mass)
	pd.PointData.SetScalar(FieldCharge, charge)
	pd.PointData.SetScalar(FieldWeighting, weight)
	pd.PointData.SetScalar(FieldSource, source)
	pd.PointData.SetVector(FieldMomentum, mom)
	return pd
}

// ChargedParticles returns the embedded plain particles, for advection.
func ChargedParticles(ps []seed.ChargedParticle) []seed.Particle {
	out := make([]seed.Particle, len(ps))
	for i, p := range ps {
		out[i] = p.Particle
	}
	return out
}
