// Package mathexpr evaluates arithmetic expressions over a closed grammar:
// numbers, the operators + - * / % ^, parentheses, a fixed set of named
// functions and the constants pi and e. Input never reaches a general
// evaluation path; everything outside the grammar is rejected.
package mathexpr

import (
	"fmt"
	"strconv"
)

// Grammar:
//
//	expr  := term (('+' | '-') term)*
//	term  := unary (('*' | '/' | '%') unary)*
//	unary := '-' unary | power
//	power := atom ('^' unary)?
//	atom  := number | name | name '(' expr (',' expr)* ')' | '(' expr ')'
type parser struct {
	tokens []token
	pos    int
}

func parse(input string) (node, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %q at position %d", tok.text, tok.pos)
	}
	return n, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus, tokMinus:
			op := p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &binaryNode{op: op.text[0], left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar, tokSlash, tokPercent:
			op := p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &binaryNode{op: op.text[0], left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (node, error) {
	if p.peek().kind == tokMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &negateNode{operand: operand}, nil
	}
	return p.parsePower()
}

// Exponentiation is right-associative, so the exponent re-enters at unary:
// 2^3^2 = 2^(3^2) and -2^2 = -(2^2).
func (p *parser) parsePower() (node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokCaret {
		p.next()
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &binaryNode{op: '^', left: base, right: exponent}, nil
	}
	return base, nil
}

func (p *parser) parseAtom() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d", tok.text, tok.pos)
		}
		return literalNode(v), nil

	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(tok)
		}
		value, ok := constants[tok.text]
		if !ok {
			return nil, fmt.Errorf("unknown identifier %q at position %d", tok.text, tok.pos)
		}
		return literalNode(value), nil

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis at position %d", closing.pos)
		}
		return inner, nil

	case tokEOF:
		return nil, fmt.Errorf("unexpected end of expression")

	default:
		return nil, fmt.Errorf("unexpected %q at position %d", tok.text, tok.pos)
	}
}

func (p *parser) parseCall(name token) (node, error) {
	fn, ok := functions[name.text]
	if !ok {
		return nil, fmt.Errorf("unknown function %q at position %d", name.text, name.pos)
	}

	p.next() // consume '('
	var args []node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if closing := p.next(); closing.kind != tokRParen {
		return nil, fmt.Errorf("missing closing parenthesis in call to %q", name.text)
	}

	if len(args) != fn.arity {
		return nil, fmt.Errorf("%s expects %d argument(s), got %d", name.text, fn.arity, len(args))
	}
	return &callNode{name: name.text, fn: fn, args: args}, nil
}
