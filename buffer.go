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
	"fmt"
	"io"
)

// maxEmptyReads is the number of consecutive empty reads after which input is
// considered exhausted with io.ErrNoProgress.
//
const maxEmptyReads = 100

// cursors are indices into a Session's buffer:
//
//	start: first byte of the current lexeme
//	index: next byte to be returned by Advance
//	read:  number of valid bytes in the buffer
//	end:   end (exclusive) of the last lexeme marked by MarkEnd
//
// Invariants: 0 <= start <= index <= read and 0 <= end <= read. start <= end
// only holds between MarkEnd and the next MarkStart.
//
type cursors struct {
	start, index, read, end int
}

func (c cursors) check() error {
	switch {
	case c.start < 0 || c.start > c.index:
		return fmt.Errorf("start cursor %d out of range [0, %d]", c.start, c.index)
	case c.index > c.read:
		return fmt.Errorf("index cursor %d past read cursor %d", c.index, c.read)
	case c.end < 0 || c.end > c.read:
		return fmt.Errorf("end cursor %d out of range [0, %d]", c.end, c.read)
	}
	return nil
}

// shift returns c with the first n bytes of the buffer dropped. n must not be
// greater than c.start. An end cursor lying before the dropped prefix is
// clamped to 0.
//
func (c cursors) shift(n int) (cursors, error) {
	if n < 0 || n > c.start {
		return c, fmt.Errorf("cannot drop %d bytes with start cursor at %d", n, c.start)
	}
	e := c.end - n
	if e < 0 {
		e = 0
	}
	r := cursors{
		start: c.start - n,
		index: c.index - n,
		read:  c.read - n,
		end:   e,
	}
	return r, r.check()
}

// Advance returns the next byte in the input stream or EOF. When all buffered
// bytes have been delivered, it reads more from the input. Once the input is
// exhausted, Advance returns EOF without reading from it again, unless ToMark
// moved the read position back into buffered data.
//
// Advance does not decode UTF-8: multi-byte characters are returned one byte
// at a time.
//
func (s *Session) Advance() int {
	if s.c.index < s.c.read && s.err == nil {
		b := s.buf[s.c.index]
		s.c.index++
		return int(b)
	}
	if s.ioErr != nil || s.err != nil {
		return EOF
	}
	s.fill()
	if s.c.index < s.c.read {
		b := s.buf[s.c.index]
		s.c.index++
		return int(b)
	}
	return EOF
}

func (s *Session) fill() {
	if s.c.read == len(s.buf) {
		if s.c.start > 0 {
			if !s.compact() {
				return
			}
		} else {
			buf := make([]byte, 2*len(s.buf))
			copy(buf, s.buf[:s.c.read])
			s.buf = buf
		}
	}

	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(s.buf[s.c.read:])
		if n < 0 || n > len(s.buf)-s.c.read {
			s.raise(Internal, true, fmt.Errorf("invalid count %d from Read", n))
			return
		}
		s.c.read += n
		if err != nil {
			s.ioErr = err
		}
		if n > 0 || err != nil {
			return
		}
	}

	s.ioErr = io.ErrNoProgress
}

// compact drops the already consumed buffer prefix [0, start), moving the
// bytes in [start, read) to the front of the buffer.
//
func (s *Session) compact() bool {
	n := s.c.start
	c, err := s.c.shift(n)
	if err != nil {
		s.raise(Internal, true, err)
		return false
	}
	copy(s.buf, s.buf[n:s.c.read])
	s.c = c
	s.offs += Pos(n)
	return true
}

// MarkStart marks the current read position as the start of the next lexeme.
// Line, column and offset counters are updated to account for all bytes
// between the previous start mark and the current read position.
//
func (s *Session) MarkStart() {
	if s.err != nil {
		return
	}
	if s.opts.countLines || s.opts.countChars {
		s.track(s.c.start, s.c.index)
	}
	s.c.start = s.c.index
	s.verify()
}

// MarkEnd marks the current read position as the end of the current lexeme.
//
func (s *Session) MarkEnd() {
	if s.err != nil {
		return
	}
	s.c.end = s.c.index
	s.verify()
}

// MoveEndBeforeEOL excludes a trailing "\n", "\r" or "\r\n" from the current
// lexeme. This is used by rules anchored at the end of a line.
//
func (s *Session) MoveEndBeforeEOL() {
	if s.c.end > s.c.start && s.buf[s.c.end-1] == '\n' {
		s.c.end--
	}
	if s.c.end > s.c.start && s.buf[s.c.end-1] == '\r' {
		s.c.end--
	}
}

// ToMark moves the read position back to the end of the current lexeme
// and records whether the next lexeme starts a line.
//
func (s *Session) ToMark() {
	if s.err != nil {
		return
	}
	if s.opts.checked && s.c.end < s.c.start {
		s.raise(Internal, true, fmt.Errorf("end cursor %d before start cursor %d", s.c.end, s.c.start))
		return
	}
	s.c.index = s.c.end
	s.pos.atBOL = s.endsWithEOL()
	s.verify()
}

// endsWithEOL returns true if the current lexeme ends with "\r", "\n", or the
// UTF-8 encoding of U+2028 (LINE SEPARATOR) or U+2029 (PARAGRAPH SEPARATOR).
//
func (s *Session) endsWithEOL() bool {
	e := s.c.end
	if e <= s.c.start {
		return false
	}
	switch b := s.buf[e-1]; b {
	case '\r', '\n':
		return true
	case 0xa8, 0xa9:
		return e-s.c.start >= 3 && s.buf[e-3] == 0xe2 && s.buf[e-2] == 0x80
	}
	return false
}

// AtBOL returns true if the next lexeme starts at the beginning of a line.
//
func (s *Session) AtBOL() bool {
	return s.pos.atBOL
}

// Text returns the current lexeme. The returned slice is only valid until the
// next call to Advance.
//
func (s *Session) Text() []byte {
	if s.c.end < s.c.start {
		return nil
	}
	return s.buf[s.c.start:s.c.end]
}

// TextString returns the current lexeme as a string.
//
func (s *Session) TextString() string {
	return string(s.Text())
}

// Length returns the length in bytes of the current lexeme.
//
func (s *Session) Length() int {
	if s.c.end < s.c.start {
		return 0
	}
	return s.c.end - s.c.start
}

func (s *Session) verify() {
	if !s.opts.checked || s.err != nil {
		return
	}
	if err := s.c.check(); err != nil {
		s.raise(Internal, true, err)
	}
}
