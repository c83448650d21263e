package lexrt

import (
	"strings"
	"testing"
)

func TestCursors_shift(t *testing.T) {
	tests := []struct {
		name string
		c    cursors
		n    int
		want cursors
		err  bool
	}{
		{"none", cursors{0, 2, 4, 1}, 0, cursors{0, 2, 4, 1}, false},
		{"all", cursors{3, 5, 8, 5}, 3, cursors{0, 2, 5, 2}, false},
		{"end_before_start", cursors{3, 5, 8, 1}, 3, cursors{0, 2, 5, 0}, false},
		{"too_far", cursors{3, 5, 8, 5}, 4, cursors{3, 5, 8, 5}, true},
		{"negative", cursors{3, 5, 8, 5}, -1, cursors{3, 5, 8, 5}, true},
		{"invalid", cursors{3, 9, 8, 5}, 1, cursors{2, 8, 7, 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.c.shift(tt.n)
			if (err != nil) != tt.err {
				t.Fatalf("got error %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestSession_fill(t *testing.T) {
	s := New(NewFile("", strings.NewReader("abcdefghij")), BufferSize(4))
	next := func(n int) {
		s.MarkStart()
		for i := 0; i < n; i++ {
			s.Advance()
		}
		s.MarkEnd()
		s.ToMark()
	}
	next(3) // abc
	if len(s.buf) != 4 || s.c.read != 4 {
		t.Fatalf("got buffer size %d, read %d", len(s.buf), s.c.read)
	}
	next(2) // de: compacts [0, 3)
	if s.offs != 3 || string(s.Text()) != "de" {
		t.Fatalf("got offset %d, text %q", s.offs, s.Text())
	}
	next(5) // fghij: does not fit, the buffer grows
	if string(s.Text()) != "fghij" || len(s.buf) < 5 {
		t.Fatalf("got text %q, buffer size %d", s.Text(), len(s.buf))
	}
	if s.Advance() != EOF {
		t.Fatal("expected EOF")
	}
	s.MarkStart()
	if s.pos.offset != 10 || s.offs+Pos(s.c.start) != 10 {
		t.Errorf("got offset %d, absolute start %d", s.pos.offset, s.offs+Pos(s.c.start))
	}
}
