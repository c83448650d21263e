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
	"golang.org/x/text/encoding"
)

// DefaultBufferSize is the initial size of a Session's read buffer.
//
const DefaultBufferSize = 8 << 10

type options struct {
	countLines   bool
	countChars   bool
	checked      bool
	bufSize      int
	enc          encoding.Encoding
	errorHandler func(s *Session, e *Error)
}

// An Option is a configuration option for a new Session.
//
type Option func(*options)

// CountLines enables or disables line counting (on by default). When
// disabled, the line number stays at 1.
//
func CountLines(on bool) Option {
	return func(o *options) {
		o.countLines = on
	}
}

// CountChars enables or disables character offset and column counting (on by
// default). When disabled, the offset and column stay at 0.
//
func CountChars(on bool) Option {
	return func(o *options) {
		o.countChars = on
	}
}

// BufferSize sets the initial size of the read buffer. The buffer grows as
// needed when a single lexeme does not fit. Values < 1 are ignored.
//
func BufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufSize = n
		}
	}
}

// Encoding sets the character encoding of the input. The input is decoded to
// UTF-8 before buffering so that generated scanners only ever see UTF-8.
//
// Diagnostics for sessions with a non-nil encoding do not print source line
// excerpts since line offsets are not those of the raw input.
//
func Encoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.enc = enc
	}
}

// Checked enables cursor invariant checks after each step of the mark
// protocol. A violation raises a fatal Internal error.
//
func Checked() Option {
	return func(o *options) {
		o.checked = true
	}
}

// ErrorHandler defines a custom error handler callback. It is called by
// Session.Error for every reported error, fatal or not. The default handler
// writes a diagnostic to os.Stderr using WriteDiagnostic.
//
func ErrorHandler(f func(s *Session, e *Error)) Option {
	return func(o *options) {
		o.errorHandler = f
	}
}
