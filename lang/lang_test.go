package lang_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/lexrt"
	"github.com/db47h/lexrt/lang"
)

const stString = 1

func isLetter(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isSpace(b byte) bool  { return b == ' ' || b == '\t' }
func notQuote(b byte) bool { return b != '"' && b != '\n' }

func testLang() *lang.Lang {
	l := lang.New()
	l.MatchBOL(lang.Initial, "directive", "#")
	l.Match(lang.Initial, "if", "if")
	l.Match(lang.Initial, "=", "=")
	l.Match(lang.Initial, "==", "==")
	l.Match(lang.Initial, "#", "#")
	l.MatchEOL(lang.Initial, "end", "end")
	l.Match(lang.Initial, "quote", `"`).Begin(stString)
	l.MatchFn(lang.Initial, "ident", isLetter, func(b byte) bool { return isLetter(b) || isDigit(b) })
	l.MatchFn(lang.Initial, "int", isDigit, isDigit)
	l.MatchFn(lang.Initial, "space", isSpace, isSpace)
	for _, eol := range []string{"\n", "\r", "\r\n"} {
		l.Match(lang.Initial, "eol", eol)
	}
	l.MatchFn(stString, "text", notQuote, notQuote)
	l.Match(stString, "quote", `"`).Begin(lang.Initial)
	return l
}

func scan(t *testing.T, input string, rec interface{}) ([]string, error) {
	t.Helper()
	s := lexrt.New(lexrt.NewFile("test", strings.NewReader(input)), lexrt.Checked(),
		lexrt.ErrorHandler(func(*lexrt.Session, *lexrt.Error) {}))
	sc := lang.NewScanner(s, testLang())
	sc.Recover = rec
	var res []string
	var text strings.Builder
	for {
		tok, err := sc.Scan()
		if err != nil {
			if err == io.EOF {
				assert.Equal(t, input, text.String(), "round trip")
				err = nil
			}
			return res, err
		}
		res = append(res, tok.String())
		text.WriteString(tok.Value.(string))
	}
}

func TestScanner_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"longest", "a==b=c", []string{
			`1:0: ident "a"`, `1:1: == "=="`, `1:3: ident "b"`, `1:4: = "="`, `1:5: ident "c"`,
		}},
		{"priority", "if iffy if0", []string{
			`1:0: if "if"`, `1:2: space " "`, `1:3: ident "iffy"`, `1:7: space " "`, `1:8: ident "if0"`,
		}},
		{"bol", "#a #\r\n#", []string{
			`1:0: directive "#"`, `1:1: ident "a"`, `1:2: space " "`, `1:3: # "#"`, `1:4: eol "\r\n"`,
			`2:0: directive "#"`,
		}},
		{"eol", "end\r\nend end\nend", []string{
			`1:0: end "end"`, `1:3: eol "\r\n"`,
			`2:0: ident "end"`, `2:3: space " "`, `2:4: end "end"`, `2:7: eol "\n"`,
			`3:0: ident "end"`,
		}},
		{"states", `a"if b"if`, []string{
			`1:0: ident "a"`, `1:1: quote "\""`, `1:2: text "if b"`, `1:6: quote "\""`, `1:7: if "if"`,
		}},
		{"lines", "1\r2\n\n3", []string{
			`1:0: int "1"`, `1:1: eol "\r"`, `2:0: int "2"`, `2:1: eol "\n"`, `3:0: eol "\n"`, `4:0: int "3"`,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scan(t, tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanner_Unmatched(t *testing.T) {
	got, err := scan(t, "a?b", nil)
	assert.ErrorIs(t, err, lexrt.ErrUnmatched)
	assert.Equal(t, []string{`1:0: ident "a"`}, got)

	got, err = scan(t, "a?b", "?")
	require.NoError(t, err)
	assert.Equal(t, []string{`1:0: ident "a"`, `1:1: ? "?"`, `1:2: ident "b"`}, got)

	// unmatched multi-byte characters are skipped one byte at a time
	got, err = scan(t, "é", "?")
	require.NoError(t, err)
	assert.Equal(t, []string{`1:0: ? "\xc3"`, `1:1: ? "\xa9"`}, got)
}

func TestScanner_ScanAll(t *testing.T) {
	s := lexrt.New(lexrt.NewFile("", strings.NewReader("x = 42\n")))
	toks, err := lang.NewScanner(s, testLang()).ScanAll()
	require.NoError(t, err)
	require.Len(t, toks, 6)
	assert.Equal(t, "int", toks[4].Kind)
	assert.Equal(t, "42", toks[4].Value)
	assert.Equal(t, lexrt.DefaultName, toks[4].Source)
	assert.Equal(t, 4, toks[4].Offset)
}

func TestLang_Panics(t *testing.T) {
	l := lang.New()
	l.Match(lang.Initial, nil, "a")
	assert.Panics(t, func() { l.Match(lang.Initial, nil, "a") })
	assert.Panics(t, func() { l.Match(lang.Initial, nil, "") })
	assert.NotPanics(t, func() { l.Match(stString, nil, "a") })
}
