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


// Package lang implements a small rule engine that drives a lexrt.Source the
// way generated scanners do: longest match first, then earliest registered
// rule, with per lexical state rule sets and rules anchored at the beginning
// or end of a line.
//
// Rules are either literal strings, stored in a search tree, or byte classes
// described by two predicates.
//
package lang

import (
	"io"

	"github.com/db47h/lexrt"
)

// Initial is the initial lexical state of a Session.
//
const Initial = 0

// A Rule is a lexical rule registered in a Lang.
//
type Rule struct {
	kind    interface{}
	prio    int
	eol     bool
	next    int
	hasNext bool
}

// Begin sets the lexical state to switch to after the rule matched. It returns
// its receiver.
//
func (r *Rule) Begin(state int) *Rule {
	r.next = state
	r.hasNext = true
	return r
}

type nodeList map[byte]*node

// A node is a node in the literal search tree of a rule set.
//
type node struct {
	c nodeList // child nodes
	r *Rule
}

// match returns the child node that matches the given byte.
//
func (n *node) match(b byte) *node {
	return n.c[b]
}

type class struct {
	first func(byte) bool
	rest  func(byte) bool
	r     *Rule
}

type ruleSet struct {
	e   *node // literal matches
	bol *node // literal matches anchored at the beginning of a line
	b   []class
}

// A Lang holds the lexical rules of a language, grouped by lexical state.
//
type Lang struct {
	sets map[int]*ruleSet
	n    int // number of registered rules
}

// New returns a new empty Lang.
//
func New() *Lang {
	return &Lang{sets: make(map[int]*ruleSet)}
}

func (l *Lang) set(state int) *ruleSet {
	rs := l.sets[state]
	if rs == nil {
		rs = &ruleSet{e: &node{c: make(nodeList)}, bol: &node{c: make(nodeList)}}
		l.sets[state] = rs
	}
	return rs
}

func (l *Lang) rule(kind interface{}) *Rule {
	r := &Rule{kind: kind, prio: l.n}
	l.n++
	return r
}

func insert(n *node, s string, r *Rule) {
	if s == "" {
		panic("empty rule")
	}
	for i := 0; i < len(s); i++ {
		c, ok := n.c[s[i]]
		if !ok {
			c = &node{c: make(nodeList)}
			n.c[s[i]] = c
		}
		n = c
	}
	if n.r != nil {
		panic("rule registered twice")
	}
	n.r = r
}

// Match registers a rule matching the literal string s in the given lexical
// state. Tokens created for the rule have the given kind, or the matched text
// if kind is nil.
//
func (l *Lang) Match(state int, kind interface{}, s string) *Rule {
	r := l.rule(kind)
	insert(l.set(state).e, s, r)
	return r
}

// MatchBOL is like Match, but the rule only matches at the beginning of a line.
//
func (l *Lang) MatchBOL(state int, kind interface{}, s string) *Rule {
	r := l.rule(kind)
	insert(l.set(state).bol, s, r)
	return r
}

// MatchEOL is like Match, but the rule only matches if s is followed by a line
// terminator. The line terminator is not part of the token.
//
func (l *Lang) MatchEOL(state int, kind interface{}, s string) *Rule {
	r := l.rule(kind)
	r.eol = true
	rs := l.set(state)
	for _, eol := range [...]string{"\n", "\r", "\r\n"} {
		insert(rs.e, s+eol, r)
	}
	return r
}

// MatchFn registers a rule matching a non-empty sequence of bytes where the
// first byte satisfies first and the following ones satisfy rest.
//
func (l *Lang) MatchFn(state int, kind interface{}, first, rest func(byte) bool) *Rule {
	r := l.rule(kind)
	rs := l.set(state)
	rs.b = append(rs.b, class{first: first, rest: rest, r: r})
	return r
}

// A Scanner matches the rules of a Lang against the input of a lexrt.Source.
//
type Scanner struct {
	src   lexrt.Source
	lang  *Lang
	alive []bool

	// Recover is the kind of tokens emitted for unmatched input. If nil,
	// unmatched input is a fatal error. Otherwise, the error is reported as
	// non-fatal and a single byte is skipped and emitted as a token of kind
	// Recover.
	Recover interface{}
}

// NewScanner returns a new Scanner for the given source and language.
//
func NewScanner(src lexrt.Source, l *Lang) *Scanner {
	return &Scanner{src: src, lang: l}
}

var empty = ruleSet{e: &node{}, bol: &node{}}

// Scan returns the next token. At the end of input it returns io.EOF, or the
// error that ended the input early.
//
func (sc *Scanner) Scan() (*lexrt.Token, error) {
	src := sc.src
	src.MarkStart()
	c := src.Advance()
	if c == lexrt.EOF {
		if err := src.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	// unless a rule matches, the lexeme is a single byte
	src.MarkEnd()

	rs := sc.lang.sets[src.State()]
	if rs == nil {
		rs = &empty
	}
	tries := [2]*node{rs.e, nil}
	if src.AtBOL() {
		tries[1] = rs.bol
	}
	if cap(sc.alive) < len(rs.b) {
		sc.alive = make([]bool, len(rs.b))
	}
	alive := sc.alive[:len(rs.b)]
	for i := range alive {
		alive[i] = true
	}

	var match *Rule
	for n := 1; ; n++ {
		b := byte(c)
		var acc *Rule
		more := false
		for i, t := range tries {
			if t == nil {
				continue
			}
			t = t.match(b)
			tries[i] = t
			if t == nil {
				continue
			}
			if t.r != nil && (acc == nil || t.r.prio < acc.prio) {
				acc = t.r
			}
			more = more || len(t.c) > 0
		}
		for i := range rs.b {
			if !alive[i] {
				continue
			}
			cl := &rs.b[i]
			ok := n == 1 && cl.first(b) || n > 1 && cl.rest(b)
			alive[i] = ok
			if !ok {
				continue
			}
			if acc == nil || cl.r.prio < acc.prio {
				acc = cl.r
			}
			more = true
		}
		if acc != nil {
			match = acc
			src.MarkEnd()
		}
		if !more {
			break
		}
		if c = src.Advance(); c == lexrt.EOF {
			break
		}
	}

	if match == nil {
		if err := src.Error(lexrt.Unmatched, sc.Recover == nil); err != nil {
			return nil, err
		}
		src.ToMark()
		return src.Create(sc.Recover), nil
	}
	if match.eol {
		src.MoveEndBeforeEOL()
	}
	src.ToMark()
	if match.hasNext {
		src.Begin(match.next)
	}
	return src.Create(match.kind), nil
}

// ScanAll scans the remaining input and returns all tokens.
//
func (sc *Scanner) ScanAll() ([]*lexrt.Token, error) {
	var toks []*lexrt.Token
	for {
		t, err := sc.Scan()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, t)
	}
}
