package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veltlang/velt/internal/evaluator"
	"github.com/veltlang/velt/internal/expand"
	"github.com/veltlang/velt/internal/object"
)

// session holds the driver state: the evaluator, variable bindings, and
// the demo constructors.
type session struct {
	ev           *evaluator.Evaluator
	env          map[string]object.Object
	constructors map[string]constructor
}

func newSession() *session {
	return &session{
		ev:           evaluator.New(),
		env:          make(map[string]object.Object),
		constructors: demoConstructors(),
	}
}

// ExecLine evaluates one input line and returns its printable result.
func (s *session) ExecLine(line string) (string, error) {
	toks := scan(line)
	if toks[0].kind == tokEOF {
		return "", nil
	}

	// Statement forms: `name = expr`, `name op= expr`, `name++`, `name--`.
	if toks[0].kind == tokIdent && len(toks) >= 2 && toks[1].kind == tokOp {
		name := toks[0].lit
		op := toks[1].lit
		switch {
		case op == "=":
			p := &parser{toks: toks[2:], session: s}
			value := p.parseExpr(0)
			if err := p.finish(value); err != nil {
				return "", err
			}
			s.env[name] = value
			return value.Inspect(), nil
		case op == "++" || op == "--":
			if toks[2].kind != tokEOF {
				break
			}
			current, err := s.lookup(name)
			if err != nil {
				return "", err
			}
			var value object.Object
			if op == "++" {
				value = s.ev.EvalIncrement(current)
			} else {
				value = s.ev.EvalDecrement(current)
			}
			if errObj, ok := value.(*object.Error); ok {
				return "", errObj
			}
			s.env[name] = value
			return value.Inspect(), nil
		default:
			if _, ok := expand.CompoundAssign(op); ok {
				current, err := s.lookup(name)
				if err != nil {
					return "", err
				}
				p := &parser{toks: toks[2:], session: s}
				right := p.parseExpr(0)
				if err := p.finish(right); err != nil {
					return "", err
				}
				value := s.ev.EvalCompound(op, current, right)
				if errObj, ok := value.(*object.Error); ok {
					return "", errObj
				}
				s.env[name] = value
				return value.Inspect(), nil
			}
		}
	}

	p := &parser{toks: toks, session: s}
	value := p.parseExpr(0)
	if err := p.finish(value); err != nil {
		return "", err
	}
	return value.Inspect(), nil
}

func (s *session) lookup(name string) (object.Object, error) {
	value, ok := s.env[name]
	if !ok {
		return nil, fmt.Errorf("undefined variable: %s", name)
	}
	return value, nil
}

// binaryPrecedence orders the driver grammar; dispatch itself is
// precedence-agnostic.
func binaryPrecedence(op string) int {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=", "<=>":
		return 1
	case "|", "^":
		return 2
	case "&":
		return 3
	case "<<", ">>":
		return 4
	case "+", "-":
		return 5
	case "*", "/", "%":
		return 6
	case "**":
		return 7
	}
	return 0
}

// parser is a small precedence-climbing reader that evaluates as it goes;
// the driver grammar is a single expression per line.
type parser struct {
	toks    []token
	pos     int
	session *session
	err     error
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) fail(format string, a ...interface{}) object.Object {
	if p.err == nil {
		p.err = fmt.Errorf(format, a...)
	}
	return object.NIL
}

func (p *parser) finish(value object.Object) error {
	if p.err != nil {
		return p.err
	}
	if t := p.peek(); t.kind != tokEOF {
		return fmt.Errorf("unexpected input: %q", t.lit)
	}
	if errObj, ok := value.(*object.Error); ok {
		return errObj
	}
	return nil
}

func (p *parser) parseExpr(minPrec int) object.Object {
	left := p.parseUnary()
	for {
		if p.err != nil || object.IsError(left) {
			return left
		}
		t := p.peek()
		if t.kind != tokOp {
			return left
		}
		prec := binaryPrecedence(t.lit)
		if prec == 0 || prec < minPrec {
			return left
		}
		p.next()
		right := p.parseExpr(prec + 1)
		if p.err != nil || object.IsError(right) {
			return right
		}
		left = p.session.ev.EvalInfix(t.lit, left, right)
	}
}

func (p *parser) parseUnary() object.Object {
	if t := p.peek(); t.kind == tokOp && (t.lit == "-" || t.lit == "~" || t.lit == "!") {
		p.next()
		operand := p.parseUnary()
		if p.err != nil || object.IsError(operand) {
			return operand
		}
		return p.session.ev.EvalPrefix(t.lit, operand)
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() object.Object {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return parseNumberLiteral(t.lit, p)
	case tokString:
		return &object.String{Value: t.lit}
	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t.lit)
		}
		value, err := p.session.lookup(t.lit)
		if err != nil {
			return p.fail("%s", err.Error())
		}
		return value
	case tokLParen:
		value := p.parseExpr(0)
		if p.err != nil || object.IsError(value) {
			return value
		}
		if closing := p.next(); closing.kind != tokRParen {
			return p.fail("expected ), got %q", closing.lit)
		}
		return value
	}
	return p.fail("unexpected token: %q", t.lit)
}

func parseNumberLiteral(lit string, p *parser) object.Object {
	if strings.Contains(lit, ".") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return p.fail("bad number: %s", lit)
		}
		return &object.Float{Value: f}
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return p.fail("bad number: %s", lit)
	}
	return &object.Integer{Value: n}
}

func (p *parser) parseCall(name string) object.Object {
	ctor, ok := p.session.constructors[name]
	if !ok {
		return p.fail("unknown constructor: %s", name)
	}
	p.next() // consume (
	var args []object.Object
	if p.peek().kind != tokRParen {
		for {
			arg := p.parseExpr(0)
			if p.err != nil || object.IsError(arg) {
				return arg
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if closing := p.next(); closing.kind != tokRParen {
		return p.fail("expected ), got %q", closing.lit)
	}
	return ctor(args)
}
