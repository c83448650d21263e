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

type position struct {
	line      int  // 1-based line number
	column    int  // 0-based column number
	offset    int  // character offset
	lastWasCR bool // last byte counted was a '\r'
	atBOL     bool // next lexeme starts a line
}

// track updates line, column and offset counters for the bytes in
// s.buf[from:to].
//
// "\n", "\r" and "\r\n" each count as a single line break, including when
// the "\r" and "\n" of a pair are tracked by different calls. Characters are
// counted as UTF-8 sequences: continuation bytes are not counted.
//
func (s *Session) track(from, to int) {
	p := &s.pos
	span := s.buf[from:to]
	bol := -1 // index in span of the first byte after the last line break
	if s.opts.countLines {
		for i, b := range span {
			switch b {
			case '\n':
				if !p.lastWasCR {
					p.line++
					p.column = 0
					s.f.AddLine(s.offs+Pos(from+i+1), p.line)
				} else {
					// the line really starts after the '\n'
					s.f.setLastLine(s.offs + Pos(from+i+1))
				}
				p.lastWasCR = false
				bol = i + 1
			case '\r':
				p.line++
				p.column = 0
				p.lastWasCR = true
				s.f.AddLine(s.offs+Pos(from+i+1), p.line)
				bol = i + 1
			default:
				p.lastWasCR = false
			}
		}
	}
	if s.opts.countChars {
		n := countChars(span)
		p.offset += n
		if bol >= 0 {
			p.column = countChars(span[bol:])
		} else {
			p.column += n
		}
	}
}

func countChars(b []byte) int {
	n := 0
	for _, c := range b {
		if c&0xc0 != 0x80 {
			n++
		}
	}
	return n
}

// Line returns the 1-based line number of the current lexeme.
//
func (s *Session) Line() int {
	return s.pos.line
}

// Column returns the 0-based column of the current lexeme.
//
func (s *Session) Column() int {
	return s.pos.column
}

// Offset returns the character offset of the current lexeme.
//
func (s *Session) Offset() int {
	return s.pos.offset
}

// Position returns the position of the current lexeme.
//
func (s *Session) Position() Position {
	return Position{
		Filename: s.f.Name(),
		Offset:   s.pos.offset,
		Line:     s.pos.line,
		Column:   s.pos.column,
	}
}
