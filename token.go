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
)

// Token is a lexeme annotated with its source position. Tokens are plain
// values: the Session keeps no reference to the tokens it creates.
//
type Token struct {
	Kind   interface{} // token type, the matched text if not specified
	Value  interface{} // matched text as a string, unless overridden
	Line   int         // 1-based line number
	Column int         // 0-based column number
	Offset int         // character offset
	Source string      // source identifier
}

// Position returns the token position.
//
func (t *Token) Position() Position {
	return Position{
		Filename: t.Source,
		Offset:   t.Offset,
		Line:     t.Line,
		Column:   t.Column,
	}
}

// String returns a string representation of the token. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (t *Token) String() string {
	if s, ok := t.Value.(string); ok {
		return fmt.Sprintf("%d:%d: %v %q", t.Line, t.Column, t.Kind, s)
	}
	return fmt.Sprintf("%d:%d: %v %v", t.Line, t.Column, t.Kind, t.Value)
}

// Create returns a new token of the given kind for the current lexeme. If
// kind is nil, the token kind is the matched text.
//
func (s *Session) Create(kind interface{}) *Token {
	t := &Token{Kind: kind}
	s.Annotate(t)
	if kind == nil {
		t.Kind = t.Value
	}
	return t
}

// Annotate sets the token value to the current lexeme and its position to
// the position of the current lexeme.
//
func (s *Session) Annotate(t *Token) {
	t.Value = s.TextString()
	t.Line = s.pos.line
	t.Column = s.pos.column
	t.Offset = s.pos.offset
	t.Source = s.f.Name()
}
