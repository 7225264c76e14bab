// SPDX-License-Identifier: MIT
// Package: lvstream/vtkio
//
// writer.go — legacy ASCII VTK writer. Floats are written with the shortest
// representation that parses back to the same float64.

package vtkio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/geom"
)

// DefaultTitle is written when the caller passes an empty title.
const DefaultTitle = "lvstream"

// WritePolyData writes pd as POLYDATA. Lines are written as LINES; a dataset
// without lines is written as one VERTICES cell per point so point clouds
// (seed sets) render.
func WritePolyData(w io.Writer, title string, pd *dataset.PolyData) error {
	if err := pd.Validate(); err != nil {
		return fmt.Errorf("WritePolyData: %w", err)
	}
	bw := bufio.NewWriter(w)
	writeHeader(bw, title, kindPolyData)

	fmt.Fprintf(bw, "POINTS %d double\n", len(pd.Points))
	for _, p := range pd.Points {
		writePoint(bw, p)
	}

	if n := pd.Lines.NumLines(); n > 0 {
		fmt.Fprintf(bw, "LINES %d %d\n", n, n+len(pd.Lines.Connectivity))
		for i := 0; i < n; i++ {
			line := pd.Lines.Line(i)
			bw.WriteString(strconv.Itoa(len(line)))
			for _, idx := range line {
				bw.WriteByte(' ')
				bw.WriteString(strconv.Itoa(idx))
			}
			bw.WriteByte('\n')
		}
	} else if n := len(pd.Points); n > 0 {
		fmt.Fprintf(bw, "VERTICES %d %d\n", n, 2*n)
		for i := 0; i < n; i++ {
			fmt.Fprintf(bw, "1 %d\n", i)
		}
	}

	writePointData(bw, len(pd.Points), pd.PointData)
	return bw.Flush()
}

// WriteStructuredPoints writes u as STRUCTURED_POINTS.
func WriteStructuredPoints(w io.Writer, title string, u *dataset.Uniform) error {
	if err := u.Validate(); err != nil {
		return fmt.Errorf("WriteStructuredPoints: %w", err)
	}
	bw := bufio.NewWriter(w)
	writeHeader(bw, title, kindStructuredPoints)
	fmt.Fprintf(bw, "DIMENSIONS %d %d %d\n", u.Dims[0], u.Dims[1], u.Dims[2])
	bw.WriteString("ORIGIN ")
	writePoint(bw, u.Origin)
	bw.WriteString("SPACING ")
	writePoint(bw, u.Spacing)
	writePointData(bw, u.NumPoints(), u.PointData)
	return bw.Flush()
}

// WritePolyDataFile creates path and writes pd into it.
func WritePolyDataFile(path, title string, pd *dataset.PolyData) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePolyData(fh, title, pd)
}

func writeHeader(bw *bufio.Writer, title, kind string) {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		title = DefaultTitle
	}
	bw.WriteString("# vtk DataFile Version 3.0\n")
	bw.WriteString(title)
	bw.WriteString("\nASCII\nDATASET ")
	bw.WriteString(kind)
	bw.WriteByte('\n')
}

func writePoint(bw *bufio.Writer, p geom.Point) {
	writeFloat(bw, p.X)
	bw.WriteByte(' ')
	writeFloat(bw, p.Y)
	bw.WriteByte(' ')
	writeFloat(bw, p.Z)
	bw.WriteByte('\n')
}

func writeFloat(bw *bufio.Writer, v float64) {
	bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

// writePointData emits scalars then vectors, each group in name order.
func writePointData(bw *bufio.Writer, n int, f dataset.Fields) {
	if f.Len() == 0 {
		return
	}
	fmt.Fprintf(bw, "POINT_DATA %d\n", n)
	for _, name := range f.ScalarNames() {
		vals, _ := f.Scalar(name)
		fmt.Fprintf(bw, "SCALARS %s double 1\nLOOKUP_TABLE default\n", name)
		for _, v := range vals {
			writeFloat(bw, v)
			bw.WriteByte('\n')
		}
	}
	for _, name := range f.VectorNames() {
		vals, _ := f.Vector(name)
		fmt.Fprintf(bw, "VECTORS %s double\n", name)
		for _, p := range vals {
			writePoint(bw, p)
		}
	}
}
