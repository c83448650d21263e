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
	"io"

	"golang.org/x/text/transform"
)

// EOF is the return value from Advance when the end of input is reached.
//
const EOF = -1

// Source is the interface through which a generated scanner drives a
// Session. Scanners hold a Source rather than embedding a Session so that the
// transition tables stay independent from the input machinery.
//
// Per lexeme, methods must be called in protocol order:
//
//	MarkStart, Advance (any number of times), MarkEnd (any number of times),
//	optionally MoveEndBeforeEOL, ToMark, then Text, Length or Create.
//
type Source interface {
	Advance() int
	MarkStart()
	MarkEnd()
	MoveEndBeforeEOL()
	ToMark()
	Text() []byte
	Length() int
	AtBOL() bool
	Begin(state int)
	State() int
	Create(kind interface{}) *Token
	Error(kind ErrorKind, fatal bool) error
	Err() error
}

var _ Source = (*Session)(nil)

// A Session holds the input buffer and position state of a scanner while
// processing a given input. A new Session must be created for every input
// stream. Sessions are not safe for concurrent use.
//
type Session struct {
	buf   []byte
	c     cursors
	offs  Pos // absolute offset of buf[0]
	pos   position
	state int // current lexical state
	f     *File
	r     io.Reader
	ioErr error // if not nil, I/O error or io.EOF @c.read
	err   error // fatal error
	opts  options
}

// New creates a new Session reading from f. A File must not be shared between
// sessions since the session records line offsets into it.
//
// The Session never closes the reader wrapped by f; the caller remains
// responsible for releasing it once scanning is done, whatever the outcome.
//
func New(f *File, opts ...Option) *Session {
	o := options{
		countLines: true,
		countChars: true,
		bufSize:    DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.errorHandler == nil {
		o.errorHandler = defErrorHandler
	}
	var r io.Reader = f
	if o.enc != nil {
		r = transform.NewReader(f, o.enc.NewDecoder())
	}
	return &Session{
		buf:  make([]byte, o.bufSize),
		pos:  position{line: 1, atBOL: true},
		f:    f,
		r:    r,
		opts: o,
	}
}

// File returns the File used as input for the session.
//
func (s *Session) File() *File {
	return s.f
}

// Begin sets the current lexical state. The value is opaque to the Session;
// generated scanners use it to select the transition table in use.
//
func (s *Session) Begin(state int) {
	s.state = state
}

// State returns the current lexical state.
//
func (s *Session) State() int {
	return s.state
}

// Error reports an error of the given kind at the current position through
// the session's error handler.
//
// If fatal is true, the session is stopped: Advance returns EOF from then on,
// the mark protocol no longer moves the buffer, and the returned error is also
// returned by Err. Otherwise Error returns nil and leaves the buffer untouched
// so that the caller may recover.
//
func (s *Session) Error(kind ErrorKind, fatal bool) error {
	return s.raise(kind, fatal, nil)
}

func (s *Session) raise(kind ErrorKind, fatal bool, cause error) error {
	e := &Error{
		Kind:  kind,
		Pos:   s.Position(),
		Fatal: fatal,
		Err:   cause,
	}
	s.opts.errorHandler(s, e)
	if !fatal {
		return nil
	}
	if s.err == nil {
		s.err = e
	}
	return e
}

// Err returns the fatal error that stopped the session, or the I/O error that
// ended input early. It returns nil if input ended normally or is not
// exhausted yet.
//
func (s *Session) Err() error {
	if s.err != nil {
		return s.err
	}
	if s.ioErr == io.EOF {
		return nil
	}
	return s.ioErr
}

func (s *Session) diagFile() *File {
	if s.opts.enc != nil || !s.opts.countLines {
		return nil
	}
	return s.f
}
