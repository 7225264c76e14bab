// SPDX-License-Identifier: MIT
// Package: lvstream/dataset
//
// fields.go — named per-point attribute arrays.

package dataset

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/geom"
)

// Fields holds named per-point arrays: scalars (one float per point) and
// 3-component vectors. The zero value is ready to use.
type Fields struct {
	scalars map[string][]float64
	vectors map[string][]geom.Point
}

// SetScalar stores a copy of values under name, replacing any previous array.
func (f *Fields) SetScalar(name string, values []float64) {
	if f.scalars == nil {
		f.scalars = make(map[string][]float64)
	}
	f.scalars[name] = slices.Clone(values)
}

// SetVector stores a copy of values under name, replacing any previous array.
func (f *Fields) SetVector(name string, values []geom.Point) {
	if f.vectors == nil {
		f.vectors = make(map[string][]geom.Point)
	}
	f.vectors[name] = slices.Clone(values)
}

// Scalar returns the scalar array called name. The slice is shared and must
// be treated as read-only.
func (f Fields) Scalar(name string) ([]float64, bool) {
	v, ok := f.scalars[name]
	return v, ok
}

// Vector returns the vector array called name (read-only, shared).
func (f Fields) Vector(name string) ([]geom.Point, bool) {
	v, ok := f.vectors[name]
	return v, ok
}

// ScalarNames returns the scalar field names in sorted order.
func (f Fields) ScalarNames() []string {
	names := make([]string, 0, len(f.scalars))
	for name := range f.scalars {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// VectorNames returns the vector field names in sorted order.
func (f Fields) VectorNames() []string {
	names := make([]string, 0, len(f.vectors))
	for name := range f.vectors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of named arrays.
func (f Fields) Len() int {
	return len(f.scalars) + len(f.vectors)
}

// validate checks that every array has exactly n entries.
func (f Fields) validate(n int) error {
	for name, v := range f.scalars {
		if len(v) != n {
			return fmt.Errorf("scalar field %q has %d values for %d points: %w", name, len(v), n, ErrFieldLength)
		}
	}
	for name, v := range f.vectors {
		if len(v) != n {
			return fmt.Errorf("vector field %q has %d values for %d points: %w", name, len(v), n, ErrFieldLength)
		}
	}
	return nil
}

// Gather returns new Fields holding, for every array, the entries at idx.
// Complexity: O(len(idx) · Len()).
func (f Fields) Gather(idx []int) (Fields, error) {
	var out Fields
	for name, v := range f.scalars {
		g, err := csr.Gather(v, idx)
		if err != nil {
			return Fields{}, fmt.Errorf("Gather(%q): %w", name, err)
		}
		out.SetScalar(name, g)
	}
	for name, v := range f.vectors {
		g, err := csr.Gather(v, idx)
		if err != nil {
			return Fields{}, fmt.Errorf("Gather(%q): %w", name, err)
		}
		out.SetVector(name, g)
	}
	return out, nil
}
