// Package primitive provides the leaf parser factories the parser engine's
// contract depends on but does not itself implement: string-literal
// matching, regexp-based longest-match, and a function-wrapped escape
// hatch. Each returns a Success advancing state.Pos() by the matched
// length, or a Failure at the input state, per the engine's contract.
package primitive

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nscarcella/packrattle/parser"
)

// String returns a parser which compares the beginning of the remaining
// input to token. If they match, the corresponding amount of input is
// consumed and the parser succeeds with token as its value; otherwise it
// fails at the input state.
func String(token string) parser.Parser {
	message := func() string { return fmt.Sprintf("%q", token) }
	return parser.New(message, func(state parser.ParserState, k parser.Continuation) {
		if strings.HasPrefix(state.Remaining(), token) {
			k(parser.Succeed(state.Advance(len(token)), token, false))
			return
		}
		k(parser.Fail(state, message, false, false))
	})
}

// Regex returns a parser which consumes the longest match of expr anchored
// at the current position (expr is implicitly anchored with \A so a match
// can never start after pos). On success, its value is the matched
// substring.
func Regex(expr string) parser.Parser {
	re := regexp.MustCompile(`\A(?:` + expr + `)`)
	re.Longest()
	message := func() string { return fmt.Sprintf("/%s/", expr) }
	return parser.New(message, func(state parser.ParserState, k parser.Continuation) {
		loc := re.FindStringIndex(state.Remaining())
		if loc == nil {
			k(parser.Fail(state, message, false, false))
			return
		}
		matched := state.Remaining()[loc[0]:loc[1]]
		k(parser.Succeed(state.Advance(loc[1]), matched, false))
	})
}

// Func wraps user code as a parser: fn is called directly with the current
// state and must return a parser.MatchResult built via parser.Succeed or
// parser.Fail.
func Func(message func() string, fn func(parser.ParserState) parser.MatchResult) parser.Parser {
	return parser.New(message, func(state parser.ParserState, k parser.Continuation) {
		k(fn(state))
	})
}

// Rune succeeds consuming exactly one rune from the input when condition
// holds for it, and fails otherwise. Grounded on the teacher's ConsumeIf.
func Rune(name string, condition func(r rune) bool) parser.Parser {
	message := func() string { return name }
	return parser.New(message, func(state parser.ParserState, k parser.Continuation) {
		remaining := state.Remaining()
		if remaining == "" {
			k(parser.Fail(state, message, false, false))
			return
		}
		r, w := decodeRune(remaining)
		if !condition(r) {
			k(parser.Fail(state, message, false, false))
			return
		}
		k(parser.Succeed(state.Advance(w), string(r), false))
	})
}

// RuneWhile consumes runes while condition holds, always succeeding (even
// consuming zero runes). Its value is the consumed substring. Grounded on
// the teacher's ConsumeWhile.
func RuneWhile(name string, condition func(r rune) bool) parser.Parser {
	message := func() string { return name }
	return parser.New(message, func(state parser.ParserState, k parser.Continuation) {
		remaining := state.Remaining()
		n := 0
		for n < len(remaining) {
			r, w := decodeRune(remaining[n:])
			if !condition(r) {
				break
			}
			n += w
		}
		k(parser.Succeed(state.Advance(n), remaining[:n], false))
	})
}

// RuneSome is RuneWhile but requires at least one rune to be consumed.
// Grounded on the teacher's ConsumeSome.
func RuneSome(name string, condition func(r rune) bool) parser.Parser {
	message := func() string { return name }
	return parser.New(message, func(state parser.ParserState, k parser.Continuation) {
		remaining := state.Remaining()
		n := 0
		for n < len(remaining) {
			r, w := decodeRune(remaining[n:])
			if !condition(r) {
				break
			}
			n += w
		}
		if n == 0 {
			k(parser.Fail(state, message, false, false))
			return
		}
		k(parser.Succeed(state.Advance(n), remaining[:n], false))
	})
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
