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


/*
Package lexrt provides the runtime support needed by table driven lexical
analyzers, like the ones generated by lex, flex or JLex style tools.

A generated scanner embeds a finite state transition table and drives a Session
to pull bytes from an io.Reader, delimit the lexemes it recognizes and build
tokens annotated with their source position. The package does not know about
lexical rules: deciding which rule matches is the job of the scanner.

Mark protocol

A Session maintains a sliding window over its input with four cursors: the
start of the current lexeme, the read position, the end of valid data and the
end of the last match. For every lexeme, a scanner calls:

	s.MarkStart()         // the lexeme starts here
	c := s.Advance()      // read ahead as long as the transition table says so
	...
	s.MarkEnd()           // each time an accepting state is reached
	...
	s.ToMark()            // resume reading right after the longest match
	tok := s.Create(kind) // or s.Text(), s.Length()

MarkStart is where line, column and character offset counters get updated for
the bytes consumed since the previous MarkStart. "\n", "\r" and "\r\n" are all
recognized as a single line break. ToMark records whether the next lexeme
starts a line, which scanners use for rules anchored at the beginning of a
line. U+2028 and U+2029 are also considered line terminators in that case.

The Session works on bytes: Advance returns one byte at a time and never
decodes UTF-8. Columns and character offsets are however counted in UTF-8
sequences. Input in other encodings can be decoded on the fly with the
Encoding option.

Buffer management

The buffer is refilled only when all buffered bytes have been delivered. If the
buffer is full at that point, the bytes before the start of the current lexeme
are dropped (compaction), or the buffer doubles in size if the current lexeme
starts at the beginning of the buffer. Slices returned by Text are therefore
only valid until the next call to Advance.

Readers returning short reads are fine. A reader that keeps returning no data
and no error will end the input with io.ErrNoProgress after 100 attempts.

Error handling

Session.Error reports Internal or Unmatched errors through an error handler
(see the ErrorHandler option). The caller decides if an error is fatal. A
fatal error stops the session and is returned as an *Error. Non-fatal errors
leave the buffer untouched so that scanners can implement their own recovery
policy, like skipping a single byte.

The lang sub-package provides a simple rule engine that drives a Session the
way generated scanners do. It is mostly useful for testing and prototyping.

*/
package lexrt
