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
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// WriteDiagnostic writes a diagnostic message for e to w in the form:
//
//	file:line:col: error: description
//	|source line where the error occurred
//	|         ^
//
// The source line and caret are only printed if f is not nil and the line can
// be read back from it (see File.GetLineBytes).
//
func WriteDiagnostic(w io.Writer, f *File, e *Error) error {
	sev := "error"
	if !e.Fatal {
		sev = "warning"
	}
	var err error
	if e.Pos.Filename != "" {
		_, err = fmt.Fprintf(w, "%s: %s: %s\n", e.Pos, sev, e.Kind)
	} else {
		_, err = fmt.Fprintf(w, "%s: %s\n", sev, e.Kind)
	}
	if err != nil || f == nil {
		return err
	}
	l, lerr := f.GetLineBytes(e.Pos.Line)
	if lerr != nil {
		return nil
	}
	b := 0
	for n := 0; n < e.Pos.Column && b < len(l); n++ {
		_, sz := utf8.DecodeRune(l[b:])
		b += sz
	}
	if _, err = fmt.Fprintf(w, "|%s\n", l); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "|%*s^\n", displayWidth(l[:b]), "")
	return err
}

// displayWidth computes the width in text cells of a given byte slice.
// (supposing rendering with a UTF-8 locale and monospaced font)
//
func displayWidth(l []byte) int {
	w := 0
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if r == '\t' {
			w++
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			// EastAsianAmbiguous depends on user locale. 2 if locale is CJK, 1 otherwise.
			w++
		}
	}
	return w
}

func defErrorHandler(s *Session, e *Error) {
	_ = WriteDiagnostic(os.Stderr, s.diagFile(), e)
}
