// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.


package lexrt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Pos is an absolute byte offset in the input stream.
//
type Pos int

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// Common errors.
var (
	ErrSeek   = errors.New("wrong file position after seek")
	ErrNoSeek = errors.New("io.Reader does not support Seek")
	ErrLine   = errors.New("invalid line number")
)

// DefaultName is the source identifier used when the input has no name.
//
const DefaultName = "<<input>>"

// Position describes a source position: the source identifier, the 1-based
// line, the 0-based column and the character offset from the start of input.
//
type Position struct {
	Filename string
	Offset   int // character offset
	Line     int // 1-based line number
	Column   int // 0-based column number (characters)
}

// String returns the position as "file:line:col" with a 1-based column, the
// form understood by most editors.
//
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column+1)
}

// A File represents an input source. It's a wrapper around an io.Reader that
// carries the source identifier and records the byte offset of every line seen
// by a Session.
//
type File struct {
	name string
	io.Reader
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File. If name is empty and r has a Name method (like
// *os.File), the name is taken from r, otherwise DefaultName is used.
//
// The File does not take ownership of r: closing it is left to the caller.
//
func NewFile(name string, r io.Reader) *File {
	if name == "" {
		if n, ok := r.(interface{ Name() string }); ok {
			name = n.Name()
		}
		if name == "" {
			name = DefaultName
		}
	}
	return &File{
		name:   name,
		Reader: r,
		lines:  []Pos{0},
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Lines returns the number of lines recorded so far.
//
func (f *File) Lines() int {
	return len(f.lines)
}

// AddLine adds a new line at the given offset.
//
// line is the 1-based line index.
//
// If pos represents a position before the position of the last known line,
// or if line is not equal to the last know line number plus one, AddLine will
// panic.
//
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if (l > 0 && f.lines[l-1] >= pos) || l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// LineOf returns the 1-based line number containing the byte offset pos.
//
func (f *File) LineOf(pos Pos) int {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}

// LinePos return the byte offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// GetLineBytes returns the contents of the given 1-based line, without its
// line terminator. The underlying reader must implement io.Seeker; its read
// position is restored before returning.
//
func (f *File) GetLineBytes(line int) (l []byte, err error) {
	lp := f.LinePos(line)
	if !lp.IsValid() {
		return nil, ErrLine
	}
	rs, ok := f.Reader.(io.ReadSeeker)
	if !ok {
		return nil, ErrNoSeek
	}
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	defer func() {
		p, serr := rs.Seek(cur, io.SeekStart)
		if serr == nil && p != cur {
			serr = ErrSeek
		}
		if err == nil {
			err = serr
		}
	}()
	fp, err := rs.Seek(int64(lp), io.SeekStart)
	if err != nil {
		return nil, err
	}
	if fp != int64(lp) {
		return nil, ErrSeek
	}

	// read the line
	r := bufio.NewReader(rs)
	for {
		buf, pref, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && len(l) > 0 {
				break
			}
			return nil, err
		}
		l = append(l, buf...)
		if !pref {
			break
		}
	}
	// bufio only splits on '\n'
	for i, b := range l {
		if b == '\r' {
			return l[:i], nil
		}
	}
	return l, nil
}

// setLastLine moves the start of the last known line to pos.
//
func (f *File) setLastLine(pos Pos) {
	if l := len(f.lines); l > 1 && f.lines[l-1] < pos {
		f.lines[l-1] = pos
	}
}
