// SPDX-License-Identifier: MIT
// Package: lvstream/vtkio

package vtkio

import (
	"errors"
	"fmt"
)

// ErrFormat indicates input that is not a supported legacy ASCII VTK file.
var ErrFormat = errors.New("vtkio: unsupported or malformed VTK file")

// formatErr builds an ErrFormat-wrapped error with context.
func formatErr(format string, args ...any) error {
	return fmt.Errorf("vtkio: "+format+": %w", append(args, ErrFormat)...)
}
