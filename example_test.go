package lexrt_test

import (
	"fmt"
	"strings"

	"github.com/db47h/lexrt"
)

// Character classes and DFA states of a tiny scanner recognizing words,
// numbers and blanks, as a lexer generator could emit it.
const (
	clsOther = iota
	clsLetter
	clsDigit
	clsBlank
	clsLF
	clsCR
)

const (
	stStart = iota
	stWord
	stNumber
	stBlank
	stEOL
	stCR
	stNone = -1
)

var transitions = [...][6]int{
	stStart:  {stNone, stWord, stNumber, stBlank, stEOL, stCR},
	stWord:   {stNone, stWord, stWord, stNone, stNone, stNone},
	stNumber: {stNone, stNone, stNumber, stNone, stNone, stNone},
	stBlank:  {stNone, stNone, stNone, stBlank, stNone, stNone},
	stEOL:    {stNone, stNone, stNone, stNone, stNone, stNone},
	stCR:     {stNone, stNone, stNone, stNone, stEOL, stNone},
}

var accept = [...]string{stWord: "WORD", stNumber: "NUMBER", stBlank: "", stEOL: "EOL", stCR: "EOL"}

func class(c int) int {
	switch {
	case c >= 'a' && c <= 'z':
		return clsLetter
	case c >= '0' && c <= '9':
		return clsDigit
	case c == ' ' || c == '\t':
		return clsBlank
	case c == '\n':
		return clsLF
	case c == '\r':
		return clsCR
	}
	return clsOther
}

type wordScanner struct {
	src lexrt.Source
}

// next returns the next token, nil at EOF.
func (sc *wordScanner) next() (*lexrt.Token, error) {
	for {
		src := sc.src
		src.MarkStart()
		state, last := stStart, stNone
		for {
			c := src.Advance()
			if c == lexrt.EOF {
				if state == stStart {
					return nil, src.Err()
				}
				break
			}
			n := transitions[state][class(c)]
			if n == stNone {
				break
			}
			state, last = n, n
			src.MarkEnd()
		}
		if last == stNone {
			return nil, src.Error(lexrt.Unmatched, true)
		}
		src.ToMark()
		if accept[last] != "" {
			return src.Create(accept[last]), nil
		}
	}
}

func Example() {
	input := "hello 42\r\nworld\n"
	s := lexrt.New(lexrt.NewFile("example", strings.NewReader(input)))
	sc := &wordScanner{src: s}
	for {
		tok, err := sc.next()
		if err != nil {
			fmt.Println(err)
			return
		}
		if tok == nil {
			break
		}
		fmt.Printf("%s %v %q\n", tok.Position(), tok.Kind, tok.Value)
	}

	// Output:
	// example:1:1 WORD "hello"
	// example:1:7 NUMBER "42"
	// example:1:9 EOL "\r\n"
	// example:2:1 WORD "world"
	// example:2:6 EOL "\n"
}
