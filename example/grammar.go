// Package example provides a worked grammar that exercises the packrattle
// engine end to end: Commit, Alt enumeration, and RepeatSeparated.
//
// It parses a small configuration file format:
//
//	configuration:  whitespace '[' whitespace bindings whitespace ']'
//
//	bindings: binding (whitespace ',' whitespace binding)*
//
//	binding:  name whitespace '=' whitespace value
//
//	name: [a-zA-Z][0-9a-zA-Z]*
//
//	value: int | bool | string | bareword
//
//	int: 0 | [1-9][0-9]*
//
//	bool: "true" | "false"
//
//	string: '"' ( [^"\] | '\' . )* '"'
//
//	bareword: [0-9a-zA-Z]+
//
//	whitespace: [ \t\n]*
//
// bareword overlaps both bool ("true"/"false" read as a literal string) and
// int (a numeral read as a literal string): a binding whose value is e.g.
// `42` or `true` is genuinely ambiguous, and the engine's Alt reports both
// readings rather than picking one — a caller wanting "numbers win" would
// wrap the int/bool alternatives in Commit.
package example

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nscarcella/packrattle/parser"
	"github.com/nscarcella/packrattle/primitive"
)

// Bindings is the result of parsing a configuration: a slice of Binding in
// source order.
type Bindings []Binding

// Binding corresponds to "name = value".
type Binding struct {
	Name  string
	Value BindingValue
}

// BindingValue is a marker interface for the values in a Binding.
type BindingValue interface {
	IsBindingValue()
}

// BindingInt is a wrapper on int to implement the BindingValue interface.
type BindingInt int

// IsBindingValue marks BindingInt as a BindingValue.
func (BindingInt) IsBindingValue() {}

// BindingBool is a wrapper on bool to implement the BindingValue interface.
type BindingBool bool

// IsBindingValue marks BindingBool as a BindingValue.
func (BindingBool) IsBindingValue() {}

// BindingString is a wrapper on string to implement the BindingValue
// interface. Supplements the teacher grammar's int/bool-only value set.
type BindingString string

// IsBindingValue marks BindingString as a BindingValue.
func (BindingString) IsBindingValue() {}

// ConfigParsers holds the configuration grammar's sub-parsers, exposed
// individually so tests can exercise rules in isolation, plus the
// top-level ConfigurationParser most callers want.
type ConfigParsers struct {
	TrueParser          parser.Parser
	FalseParser         parser.Parser
	BoolParser          parser.Parser
	IntParser           parser.Parser
	StringParser        parser.Parser
	BareWordParser      parser.Parser
	ValueParser         parser.Parser
	NameParser          parser.Parser
	WhitespaceParser    parser.Parser
	BindingParser       parser.Parser
	BindingsParser      parser.Parser
	ConfigurationParser parser.Parser
}

func isAsciiLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphaNum(r rune) bool {
	return isAsciiLetter(r) || isDecimalDigit(r)
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}

func asBindingValue(ctor func(any) BindingValue) func(any) (any, error) {
	return func(v any) (any, error) {
		return ctor(v), nil
	}
}

// NewConfigParser builds a ConfigParsers for the configuration-binding-
// language grammar described in this package's doc comment.
func NewConfigParser() ConfigParsers {
	var p ConfigParsers

	p.TrueParser = primitive.String("true").OnMatch(func(any) (any, error) { return true, nil })
	p.FalseParser = primitive.String("false").OnMatch(func(any) (any, error) { return false, nil })
	p.BoolParser = parser.Alt(parser.Ref(p.TrueParser), parser.Ref(p.FalseParser))

	p.IntParser = primitive.Regex(`0|[1-9][0-9]*`).OnMatch(func(v any) (any, error) {
		n, err := strconv.Atoi(v.(string))
		if err != nil {
			return nil, fmt.Errorf("not a valid int: %w", err)
		}
		return n, nil
	})

	p.StringParser = primitive.Regex(`"(?:[^"\\]|\\.)*"`).OnMatch(func(v any) (any, error) {
		return unescapeQuoted(v.(string)), nil
	})

	p.BareWordParser = primitive.RuneSome("bareword", isAlphaNum).OnMatch(func(v any) (any, error) {
		return v.(string), nil
	})

	p.ValueParser = parser.Alt(
		parser.Ref(p.BoolParser.OnMatch(asBindingValue(func(v any) BindingValue { return BindingBool(v.(bool)) }))),
		parser.Ref(p.IntParser.OnMatch(asBindingValue(func(v any) BindingValue { return BindingInt(v.(int)) }))),
		parser.Ref(p.StringParser.OnMatch(asBindingValue(func(v any) BindingValue { return BindingString(v.(string)) }))),
		parser.Ref(p.BareWordParser.OnMatch(asBindingValue(func(v any) BindingValue { return BindingString(v.(string)) }))),
	)

	p.NameParser = parser.Seq(
		parser.Ref(primitive.Rune("identifier start", isAsciiLetter)),
		parser.Ref(primitive.RuneWhile("identifier rest", isAlphaNum)),
	).OnMatch(func(v any) (any, error) {
		parts := v.([]any)
		return parts[0].(string) + parts[1].(string), nil
	})

	p.WhitespaceParser = primitive.RuneWhile("whitespace", isWhitespace)

	p.BindingParser = parser.SeqIgnore(
		parser.Ref(p.WhitespaceParser),
		parser.Ref(p.NameParser),
		parser.Ref(parser.Commit(parser.Ref(primitive.String("="))).Drop()),
		parser.Ref(p.ValueParser),
	).OnMatch(func(v any) (any, error) {
		parts := v.([]any)
		return Binding{Name: parts[0].(string), Value: parts[1].(BindingValue)}, nil
	})

	separator := parser.Seq(
		parser.Ref(p.WhitespaceParser.Drop()),
		parser.Ref(primitive.String(",").Drop()),
	)
	p.BindingsParser = parser.RepeatSeparated(parser.Ref(p.BindingParser), parser.Ref(separator), 1, 0).
		OnMatch(func(v any) (any, error) {
			list := v.([]any)
			bindings := make(Bindings, len(list))
			for i, b := range list {
				bindings[i] = b.(Binding)
			}
			return bindings, nil
		})

	p.ConfigurationParser = parser.SeqIgnore(
		parser.Ref(p.WhitespaceParser),
		parser.Ref(parser.Commit(parser.Ref(primitive.String("["))).Drop()),
		parser.Ref(p.BindingsParser),
		parser.Ref(primitive.String("]").Drop()),
	).OnMatch(func(v any) (any, error) {
		parts := v.([]any)
		return parts[0].(Bindings), nil
	})

	return p
}

// unescapeQuoted strips the surrounding quotes from a matched string literal
// and resolves \" and \\ escapes. matched is assumed to already satisfy the
// StringParser's regex (surrounding quotes present).
func unescapeQuoted(matched string) string {
	inner := matched[1 : len(matched)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			b.WriteByte(inner[i])
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
