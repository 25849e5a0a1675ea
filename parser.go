// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jload

// A parser consumes tokens from its lexer and builds the document tree
// through a Builder. Parsing is recursive descent with one method per
// grammar production; nesting depth is bounded only by the goroutine stack.
type parser struct {
	lex *lexer
	b   Builder
}

// parseDocument parses a complete document: a single object or array,
// followed by end of input. A document rooted at a bare scalar is rejected.
func (p *parser) parseDocument() (Value, error) {
	p.lex.scan()
	if p.lex.tok != LBrace && p.lex.tok != LSquare {
		return nil, p.errNear("'[' or '{' expected")
	}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if p.lex.scan() != EOF {
		p.b.Release(v)
		return nil, p.errNear("end of file expected")
	}
	return v, nil
}

// parseValue parses the value beginning at the current token.
func (p *parser) parseValue() (Value, error) {
	switch p.lex.tok {
	case String:
		return p.b.String(string(p.lex.str))
	case Integer:
		return p.b.Integer(p.lex.num)
	case Real:
		return p.b.Real(p.lex.real)
	case True:
		return p.b.Bool(true)
	case False:
		return p.b.Bool(false)
	case Null:
		return p.b.Null()
	case LBrace:
		return p.parseObject()
	case LSquare:
		return p.parseArray()
	case Invalid:
		return nil, p.errNear("invalid token")
	default:
		return nil, p.errNear("unexpected token")
	}
}

// parseObject parses an object whose opening brace is the current token.
// On failure the partially built object, and any value produced for the
// member in progress, are released before the error propagates.
func (p *parser) parseObject() (Value, error) {
	obj, err := p.b.Object()
	if err != nil {
		return nil, err
	}

	if p.lex.scan() == RBrace {
		return obj, nil
	}

	for {
		if p.lex.tok != String {
			return p.fail(obj, "string or '}' expected")
		}
		key := string(p.lex.str) // copy: the payload dies on the next scan

		if p.lex.scan() != Colon {
			return p.fail(obj, "':' expected")
		}

		p.lex.scan()
		v, err := p.parseValue()
		if err != nil {
			p.b.Release(obj)
			return nil, err
		}

		if err := p.b.SetMember(obj, key, v); err != nil {
			p.b.Release(v)
			p.b.Release(obj)
			return nil, err
		}

		if p.lex.scan() != Comma {
			break
		}
		p.lex.scan()
	}

	if p.lex.tok != RBrace {
		return p.fail(obj, "'}' expected")
	}
	return obj, nil
}

// parseArray parses an array whose opening bracket is the current token.
func (p *parser) parseArray() (Value, error) {
	arr, err := p.b.Array()
	if err != nil {
		return nil, err
	}

	if p.lex.scan() == RSquare {
		return arr, nil
	}

	for p.lex.tok != EOF {
		v, err := p.parseValue()
		if err != nil {
			p.b.Release(arr)
			return nil, err
		}

		if err := p.b.Append(arr, v); err != nil {
			p.b.Release(v)
			p.b.Release(arr)
			return nil, err
		}

		if p.lex.scan() != Comma {
			break
		}
		p.lex.scan()
	}

	if p.lex.tok != RSquare {
		return p.fail(arr, "']' expected")
	}
	return arr, nil
}

func (p *parser) fail(owned Value, msg string) (Value, error) {
	p.b.Release(owned)
	return nil, p.errNear(msg)
}

func (p *parser) errNear(msg string) *Error { return errNear(p.lex, msg) }
