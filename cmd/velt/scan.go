package main

import "strings"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokString
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
	tokIllegal
)

type token struct {
	kind tokenKind
	lit  string
}

// operators, longest first so multi-character symbols win.
var opTable = []string{
	"<=>", "<<=", ">>=", "**=",
	"==", "!=", "<=", ">=", "<<", ">>", "**",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"++", "--",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">", "=", "!",
}

func scan(input string) []token {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case c == '"':
			j := i + 1
			for j < len(input) && input[j] != '"' {
				j++
			}
			if j >= len(input) {
				toks = append(toks, token{tokIllegal, input[i:]})
				return toks
			}
			toks = append(toks, token{tokString, input[i+1 : j]})
			i = j + 1
		case isDigit(c):
			j := i
			for j < len(input) && (isDigit(input[j]) || input[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, input[i:j]})
			i = j
		case isLetter(c):
			j := i
			for j < len(input) && (isLetter(input[j]) || isDigit(input[j])) {
				j++
			}
			toks = append(toks, token{tokIdent, input[i:j]})
			i = j
		default:
			matched := false
			for _, op := range opTable {
				if strings.HasPrefix(input[i:], op) {
					toks = append(toks, token{tokOp, op})
					i += len(op)
					matched = true
					break
				}
			}
			if !matched {
				toks = append(toks, token{tokIllegal, string(c)})
				i++
			}
		}
	}
	toks = append(toks, token{tokEOF, ""})
	return toks
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
