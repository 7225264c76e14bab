// SPDX-License-Identifier: MIT
// Package: lvstream/vtkio

package vtkio

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstream/geom"
)

// tokens is a whitespace tokenizer with one token of push-back.
type tokens struct {
	sc      *bufio.Scanner
	pending string
	has     bool
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

// next returns the next token or io.EOF.
func (t *tokens) next() (string, error) {
	if t.has {
		t.has = false
		return t.pending, nil
	}
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (t *tokens) unread(tok string) {
	t.pending, t.has = tok, true
}

// must returns the next token, turning EOF into a format error.
func (t *tokens) must(what string) (string, error) {
	tok, err := t.next()
	if errors.Is(err, io.EOF) {
		return "", formatErr("unexpected end of file reading %s", what)
	}
	return tok, err
}

func (t *tokens) expect(keyword string) error {
	tok, err := t.must(keyword)
	if err != nil {
		return err
	}
	if !strings.EqualFold(tok, keyword) {
		return formatErr("got %q, want %s", tok, keyword)
	}
	return nil
}

func (t *tokens) integer(what string) (int, error) {
	tok, err := t.must(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, formatErr("%s: bad integer %q", what, tok)
	}
	return v, nil
}

func (t *tokens) count(what string) (int, error) {
	v, err := t.integer(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, formatErr("%s: negative count %d", what, v)
	}
	return v, nil
}

func (t *tokens) number(what string) (float64, error) {
	tok, err := t.must(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, formatErr("%s: bad number %q", what, tok)
	}
	return v, nil
}

// maxPrealloc caps the capacity reserved from a count read off the file;
// longer arrays grow by append as their values actually arrive.
const maxPrealloc = 1 << 16

func prealloc(n int) int {
	return min(n, maxPrealloc)
}

func (t *tokens) ints(n int, what string) ([]int, error) {
	out := make([]int, 0, prealloc(n))
	for range n {
		v, err := t.integer(what)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (t *tokens) floats(n int, what string) ([]float64, error) {
	out := make([]float64, 0, prealloc(n))
	for range n {
		v, err := t.number(what)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (t *tokens) point(what string) (geom.Point, error) {
	v, err := t.floats(3, what)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

func (t *tokens) points(n int, what string) ([]geom.Point, error) {
	out := make([]geom.Point, 0, prealloc(n))
	for range n {
		p, err := t.point(what)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
