// SPDX-License-Identifier: MIT
// Package: lvmesh/meshio
//
// scanner.go — line-numbered scanning shared by both readers.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lines wraps a bufio.Scanner with the current 1-based line number.
type lines struct {
	sc   *bufio.Scanner
	line int
	op   string
}

func newLines(op string, r io.Reader) *lines {
	return &lines{sc: bufio.NewScanner(r), op: op}
}

// next returns the next trimmed line; ok is false at end of input.
func (l *lines) next() (string, bool, error) {
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", false, fmt.Errorf("%s: line %d: %w", l.op, l.line+1, err)
		}
		return "", false, nil
	}
	l.line++
	return strings.TrimSpace(l.sc.Text()), true, nil
}

// must returns the next line or an ErrFormat naming what was expected.
func (l *lines) must(what string) (string, error) {
	s, ok, err := l.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", l.errorf("unexpected end of input, want %s", what)
	}
	return s, nil
}

// skipTo advances past the first line equal to tag (case-insensitive).
func (l *lines) skipTo(tag string) error {
	for {
		s, ok, err := l.next()
		if err != nil {
			return err
		}
		if !ok {
			return l.errorf("missing %q", tag)
		}
		if strings.EqualFold(s, tag) {
			return nil
		}
	}
}

// errorf formats an ErrFormat at the current line.
func (l *lines) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", l.op, l.line, fmt.Sprintf(format, args...), ErrFormat)
}

func (l *lines) atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, l.errorf("integer %q", s)
	}
	return v, nil
}

func (l *lines) atof(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, l.errorf("number %q", s)
	}
	return v, nil
}

// count reads a block's leading count line.
func (l *lines) count(block string) (int, error) {
	s, err := l.must(block + " count")
	if err != nil {
		return 0, err
	}
	n, err := l.atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, l.errorf("negative %s count %d", block, n)
	}
	return n, nil
}

// expect reads the next line and checks it equals tag.
func (l *lines) expect(tag string) error {
	s, err := l.must(tag)
	if err != nil {
		return err
	}
	if s != tag {
		return l.errorf("got %q, want %q", s, tag)
	}
	return nil
}
