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

// ErrorKind classifies the errors raised by a Session.
//
type ErrorKind int

// Error kinds.
//
const (
	Internal  ErrorKind = iota // engine invariant violated
	Unmatched                  // no rule matched the input at the current position
)

var kindDesc = [...]string{
	Internal:  "internal error",
	Unmatched: "unmatched input",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindDesc) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindDesc[k]
}

// Sentinel errors to be used with errors.Is.
//
var (
	ErrInternal  error = &Error{Kind: Internal}
	ErrUnmatched error = &Error{Kind: Unmatched}
)

// Error is the error type reported by Session.Error.
//
type Error struct {
	Kind  ErrorKind
	Pos   Position // position of the current lexeme
	Fatal bool
	Err   error // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Pos.Filename == "" {
		return msg
	}
	return e.Pos.String() + ": " + msg
}

// Is reports whether target is an *Error of the same kind.
//
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
