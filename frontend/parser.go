package frontend

import (
	burg "github.com/ocaml-burg/ocamlburg"
)

// Parse tokenizes and parses a full specification source file, returning a
// burg.Spec ready for normalize.Normalize. file is used only to stamp
// diagnostic positions (burg.Pos.File).
func Parse(file string, src []byte) (*burg.Spec, error) {
	toks, err := Tokenize(file, src)
	if err != nil {
		return nil, burg.NewError(burg.IOFailure, burg.Pos{File: file}, "lexing %s: %v", file, err)
	}
	p := &parser{file: file, toks: toks, terminals: map[string]bool{
		"int": true, "string": true, "char": true,
	}}
	return p.parseSpec()
}

type parser struct {
	file      string
	toks      []Token
	pos       int
	terminals map[string]bool
}

func (p *parser) cur() Token { return p.toks[p.pos] }
func (p *parser) pos2() Pos  { return p.cur().Pos }

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) burgPos() burg.Pos {
	pos := p.pos2()
	return burg.Pos{File: p.file, Line: pos.Line, Col: pos.Col}
}

func (p *parser) errf(format string, args ...interface{}) error {
	return burg.NewError(burg.IOFailure, p.burgPos(), format, args...)
}

func (p *parser) expect(k Kind) (Token, error) {
	if p.cur().Kind != k {
		return Token{}, p.errf("expected %s, found %s", k, p.cur())
	}
	return p.advance(), nil
}

// parseSpec parses the top-level grammar: a run of declarations (any
// order), %%, then the rule list.
func (p *parser) parseSpec() (*burg.Spec, error) {
	spec := &burg.Spec{
		Terminals:    map[string]bool{},
		NontermTypes: map[string]string{},
	}
	for p.cur().Kind != PercentPercent {
		if p.cur().Kind == EOF {
			return nil, p.errf("unexpected end of input, expected '%%' before the rule list")
		}
		if err := p.parseDeclaration(spec); err != nil {
			return nil, err
		}
	}
	p.advance() // consume %%

	for p.cur().Kind != EOF {
		rule, err := p.parseRule(spec)
		if err != nil {
			return nil, err
		}
		spec.Rules = append(spec.Rules, rule)
	}

	if len(spec.Rules) == 0 && spec.Head == "" && spec.Tail == "" {
		return nil, burg.NewError(burg.EmptySpecification, burg.Pos{File: p.file}, "specification %s has no rules, head, or tail", p.file)
	}
	return spec, nil
}

func (p *parser) parseDeclaration(spec *burg.Spec) error {
	switch p.cur().Kind {
	case PercentTerm:
		p.advance()
		for p.cur().Kind == Ident {
			name := p.advance().Text
			spec.Terminals[name] = true
			p.terminals[name] = true
		}
		return nil
	case PercentHead:
		p.advance()
		code, err := p.expect(Code)
		if err != nil {
			return err
		}
		spec.Head = code.Text
		return nil
	case PercentTail:
		p.advance()
		code, err := p.expect(Code)
		if err != nil {
			return err
		}
		spec.Tail = code.Text
		return nil
	case PercentType:
		p.advance()
		name, err := p.expect(Ident)
		if err != nil {
			return err
		}
		code, err := p.expect(Code)
		if err != nil {
			return err
		}
		spec.NontermTypes[name.Text] = code.Text
		return nil
	default:
		return p.errf("expected a declaration (%%term/%%head/%%tail/%%type) or '%%%%', found %s", p.cur())
	}
}

// parseRule parses `nonterm : pattern [ cost ] action`.
func (p *parser) parseRule(spec *burg.Spec) (burg.Rule, error) {
	pos := p.burgPos()
	lhs, err := p.expect(Ident)
	if err != nil {
		return burg.Rule{}, err
	}
	if _, err := p.expect(Colon); err != nil {
		return burg.Rule{}, err
	}
	pat, err := p.parsePattern()
	if err != nil {
		return burg.Rule{}, err
	}
	cost, err := p.parseCost()
	if err != nil {
		return burg.Rule{}, err
	}
	action, err := p.expect(Code)
	if err != nil {
		return burg.Rule{}, err
	}
	return burg.Rule{
		LHS:    lhs.Text,
		Rule:   pat,
		Cost:   cost,
		Action: burg.Action{Code: action.Text},
		Pos:    pos,
	}, nil
}

// parseCost parses the optional cost clause: a bracketed non-negative
// integer literal, or a bracketed code block. Absent entirely, the cost
// defaults to the literal zero.
func (p *parser) parseCost() (burg.Cost, error) {
	if p.cur().Kind != LBracket {
		return burg.LitCost(0), nil
	}
	p.advance()
	var cost burg.Cost
	switch p.cur().Kind {
	case Int:
		tok := p.advance()
		if tok.Int < 0 {
			return burg.Cost{}, p.errf("cost must be non-negative, found %d", tok.Int)
		}
		cost = burg.LitCost(tok.Int)
	case Code:
		tok := p.advance()
		cost = burg.DynCost(tok.Text)
	default:
		return burg.Cost{}, p.errf("expected an integer or code-block cost, found %s", p.cur())
	}
	if _, err := p.expect(RBracket); err != nil {
		return burg.Cost{}, err
	}
	return cost, nil
}

// parsePattern parses the pattern grammar:
//
//	number | "string" | 'c' | id ( pattern,… ) | id () | id [: id]
//
// with a bare id read as sugar for id:id.
func (p *parser) parsePattern() (*burg.Pattern, error) {
	switch p.cur().Kind {
	case Int:
		tok := p.advance()
		return burg.Lit(burg.IntLiteral(tok.Int)), nil
	case String:
		tok := p.advance()
		return burg.Lit(burg.StringLiteral(tok.Text)), nil
	case Char:
		tok := p.advance()
		return burg.Lit(burg.CharLiteral(tok.Char)), nil
	case Ident:
		name := p.advance().Text
		if p.cur().Kind == LParen {
			return p.parseConstructorArgs(name)
		}
		return p.parseVariableTail(name)
	default:
		return nil, p.errf("expected a pattern, found %s", p.cur())
	}
}

func (p *parser) parseConstructorArgs(ctor string) (*burg.Pattern, error) {
	p.advance() // consume '('
	var args []*burg.Pattern
	if p.cur().Kind != RParen {
		for {
			arg, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().Kind != Comma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(RParen); err != nil {
		return nil, err
	}
	return burg.Cons(ctor, args), nil
}

// parseVariableTail parses the `[: id]` suffix of an `id` pattern already
// consumed as name, applying the bare-id sugar (name:name) when absent.
func (p *parser) parseVariableTail(name string) (*burg.Pattern, error) {
	typeName := name
	if p.cur().Kind == Colon {
		p.advance()
		tok, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		typeName = tok.Text
	}
	if p.terminals[typeName] {
		return burg.Var(name, burg.Terminal(typeName)), nil
	}
	return burg.Var(name, burg.Nonterminal(typeName)), nil
}
