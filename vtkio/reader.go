// SPDX-License-Identifier: MIT
// Package: lvstream/vtkio
//
// reader.go — legacy ASCII VTK reader for STRUCTURED_POINTS and POLYDATA.

package vtkio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/geom"
)

const (
	kindStructuredPoints = "STRUCTURED_POINTS"
	kindPolyData         = "POLYDATA"
)

// File is one parsed VTK file. Exactly one of Uniform and PolyData is set.
type File struct {
	Title    string
	Uniform  *dataset.Uniform
	PolyData *dataset.PolyData
}

// Read parses a legacy ASCII VTK file holding STRUCTURED_POINTS or POLYDATA.
//
// Supported sections: DIMENSIONS/ORIGIN/SPACING (or ASPECT_RATIO), POINTS,
// LINES and VERTICES in both the classic count-prefixed layout and the
// OFFSETS/CONNECTIVITY layout, and POINT_DATA with SCALARS (one component),
// VECTORS, NORMALS and FIELD arrays of one or three components. VERTICES are
// consumed and dropped. Anything else fails with ErrFormat.
func Read(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)
	title, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	t := newTokens(br)
	format, err := t.must("file format")
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(format, "ASCII") {
		return nil, formatErr("format %q, only ASCII is supported", format)
	}
	if err := t.expect("DATASET"); err != nil {
		return nil, err
	}
	kind, err := t.must("dataset type")
	if err != nil {
		return nil, err
	}

	f := &File{Title: title}
	switch strings.ToUpper(kind) {
	case kindStructuredPoints:
		f.Uniform, err = readStructuredPoints(t)
	case kindPolyData:
		f.PolyData, err = readPolyData(t)
	default:
		err = formatErr("dataset type %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ReadPolyData reads a POLYDATA file.
func ReadPolyData(r io.Reader) (*dataset.PolyData, error) {
	f, err := Read(r)
	if err != nil {
		return nil, err
	}
	if f.PolyData == nil {
		return nil, formatErr("expected %s", kindPolyData)
	}
	return f.PolyData, nil
}

// ReadStructuredPoints reads a STRUCTURED_POINTS file.
func ReadStructuredPoints(r io.Reader) (*dataset.Uniform, error) {
	f, err := Read(r)
	if err != nil {
		return nil, err
	}
	if f.Uniform == nil {
		return nil, formatErr("expected %s", kindStructuredPoints)
	}
	return f.Uniform, nil
}

// readHeader consumes the version line and the title line.
func readHeader(br *bufio.Reader) (string, error) {
	version, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(version)), "# vtk datafile") {
		return "", formatErr("missing \"# vtk DataFile\" header")
	}
	title, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", formatErr("missing title line")
		}
		return "", err
	}
	return strings.TrimSpace(title), nil
}

func readStructuredPoints(t *tokens) (*dataset.Uniform, error) {
	u := &dataset.Uniform{Spacing: geom.Point{X: 1, Y: 1, Z: 1}}
	haveDims := false
	for {
		kw, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch strings.ToUpper(kw) {
		case "DIMENSIONS":
			dims, err := t.ints(3, "DIMENSIONS")
			if err != nil {
				return nil, err
			}
			u.Dims = [3]int{dims[0], dims[1], dims[2]}
			haveDims = true
		case "ORIGIN":
			if u.Origin, err = t.point("ORIGIN"); err != nil {
				return nil, err
			}
		case "SPACING", "ASPECT_RATIO":
			if u.Spacing, err = t.point("SPACING"); err != nil {
				return nil, err
			}
		case "POINT_DATA":
			if !haveDims {
				return nil, formatErr("POINT_DATA before DIMENSIONS")
			}
			n, err := t.count("POINT_DATA")
			if err != nil {
				return nil, err
			}
			if n != u.NumPoints() {
				return nil, formatErr("POINT_DATA %d for %d lattice points", n, u.NumPoints())
			}
			if err := readPointData(t, n, &u.PointData); err != nil {
				return nil, err
			}
		default:
			return nil, formatErr("unsupported STRUCTURED_POINTS section %q", kw)
		}
	}
	if !haveDims {
		return nil, formatErr("STRUCTURED_POINTS without DIMENSIONS")
	}
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("vtkio: %w: %w", ErrFormat, err)
	}
	return u, nil
}

func readPolyData(t *tokens) (*dataset.PolyData, error) {
	pd := &dataset.PolyData{Lines: csr.Empty()}
	havePoints := false
	for {
		kw, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch strings.ToUpper(kw) {
		case "POINTS":
			n, err := t.count("POINTS")
			if err != nil {
				return nil, err
			}
			if _, err := t.must("POINTS data type"); err != nil {
				return nil, err
			}
			if pd.Points, err = t.points(n, "POINTS"); err != nil {
				return nil, err
			}
			havePoints = true
		case "LINES":
			if pd.Lines, err = readCells(t, "LINES"); err != nil {
				return nil, err
			}
		case "VERTICES":
			if _, err := readCells(t, "VERTICES"); err != nil {
				return nil, err
			}
		case "POINT_DATA":
			n, err := t.count("POINT_DATA")
			if err != nil {
				return nil, err
			}
			if n != len(pd.Points) {
				return nil, formatErr("POINT_DATA %d for %d points", n, len(pd.Points))
			}
			if err := readPointData(t, n, &pd.PointData); err != nil {
				return nil, err
			}
		default:
			return nil, formatErr("unsupported POLYDATA section %q", kw)
		}
	}
	if !havePoints {
		return nil, formatErr("POLYDATA without POINTS")
	}
	if err := pd.Validate(); err != nil {
		return nil, fmt.Errorf("vtkio: %w: %w", ErrFormat, err)
	}
	return pd, nil
}

// readCells parses a cell block header "<a> <b>" and its body in either the
// classic layout (a cells, b = a + Σcounts integers, each cell "k i0..ik-1")
// or the OFFSETS/CONNECTIVITY layout (a offsets, b connectivity entries).
func readCells(t *tokens, section string) (csr.Lines, error) {
	a, err := t.count(section)
	if err != nil {
		return csr.Lines{}, err
	}
	b, err := t.count(section)
	if err != nil {
		return csr.Lines{}, err
	}

	tok, err := t.must(section)
	if err != nil {
		if a == 0 && b == 0 {
			return csr.Empty(), nil
		}
		return csr.Lines{}, err
	}
	if strings.EqualFold(tok, "OFFSETS") {
		if _, err := t.must("OFFSETS data type"); err != nil {
			return csr.Lines{}, err
		}
		offsets, err := t.ints(a, "OFFSETS")
		if err != nil {
			return csr.Lines{}, err
		}
		if err := t.expect("CONNECTIVITY"); err != nil {
			return csr.Lines{}, err
		}
		if _, err := t.must("CONNECTIVITY data type"); err != nil {
			return csr.Lines{}, err
		}
		conn, err := t.ints(b, "CONNECTIVITY")
		if err != nil {
			return csr.Lines{}, err
		}
		if len(offsets) == 0 {
			offsets = []int{0}
		}
		lines := csr.Lines{Offsets: offsets, Connectivity: conn}
		if err := lines.Validate(-1); err != nil {
			return csr.Lines{}, fmt.Errorf("vtkio: %s: %w: %w", section, ErrFormat, err)
		}
		return lines, nil
	}
	t.unread(tok)

	counts := make([]int, 0, prealloc(a))
	conn := make([]int, 0, prealloc(max(b-a, 0)))
	consumed := 0
	for i := 0; i < a; i++ {
		k, err := t.count(section + " cell size")
		if err != nil {
			return csr.Lines{}, err
		}
		ids, err := t.ints(k, section)
		if err != nil {
			return csr.Lines{}, err
		}
		counts = append(counts, k)
		conn = append(conn, ids...)
		consumed += k + 1
	}
	if consumed != b {
		return csr.Lines{}, formatErr("%s size %d, read %d integers", section, b, consumed)
	}
	return csr.FromCounts(counts, conn)
}

// readPointData reads attribute arrays of n tuples until end of file.
func readPointData(t *tokens, n int, f *dataset.Fields) error {
	for {
		kw, err := t.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToUpper(kw) {
		case "SCALARS":
			name, err := t.must("SCALARS name")
			if err != nil {
				return err
			}
			if _, err := t.must("SCALARS data type"); err != nil {
				return err
			}
			comps := 1
			tok, err := t.must("SCALARS")
			if err != nil {
				return err
			}
			if v, convErr := strconv.Atoi(tok); convErr == nil {
				comps = v
			} else {
				t.unread(tok)
			}
			if comps != 1 {
				return formatErr("SCALARS %q with %d components", name, comps)
			}
			tok, err = t.must("SCALARS")
			if err != nil {
				return err
			}
			if strings.EqualFold(tok, "LOOKUP_TABLE") {
				if _, err := t.must("LOOKUP_TABLE name"); err != nil {
					return err
				}
			} else {
				t.unread(tok)
			}
			vals, err := t.floats(n, "SCALARS "+name)
			if err != nil {
				return err
			}
			f.SetScalar(name, vals)
		case "VECTORS", "NORMALS":
			name, err := t.must(kw + " name")
			if err != nil {
				return err
			}
			if _, err := t.must(kw + " data type"); err != nil {
				return err
			}
			vals, err := t.points(n, kw+" "+name)
			if err != nil {
				return err
			}
			f.SetVector(name, vals)
		case "FIELD":
			if err := readFieldData(t, n, f); err != nil {
				return err
			}
		default:
			return formatErr("unsupported POINT_DATA section %q", kw)
		}
	}
}

// readFieldData reads "FIELD <name> <arrays>" followed by arrays of the form
// "<name> <components> <tuples> <type>".
func readFieldData(t *tokens, n int, f *dataset.Fields) error {
	if _, err := t.must("FIELD name"); err != nil {
		return err
	}
	arrays, err := t.count("FIELD array count")
	if err != nil {
		return err
	}
	for i := 0; i < arrays; i++ {
		name, err := t.must("FIELD array name")
		if err != nil {
			return err
		}
		comps, err := t.count("FIELD components")
		if err != nil {
			return err
		}
		tuples, err := t.count("FIELD tuples")
		if err != nil {
			return err
		}
		if _, err := t.must("FIELD data type"); err != nil {
			return err
		}
		if tuples != n {
			return formatErr("FIELD array %q has %d tuples for %d points", name, tuples, n)
		}
		switch comps {
		case 1:
			vals, err := t.floats(n, name)
			if err != nil {
				return err
			}
			f.SetScalar(name, vals)
		case 3:
			vals, err := t.points(n, name)
			if err != nil {
				return err
			}
			f.SetVector(name, vals)
		default:
			return formatErr("FIELD array %q with %d components", name, comps)
		}
	}
	return nil
}
