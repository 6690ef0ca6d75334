// SPDX-License-Identifier: MPL-2.0

package glob

import (
	"fmt"
	"strings"
)

// ParseError describes a malformed pattern. Pos is the byte offset into the
// pattern text at which parsing failed.
type ParseError struct {
	Pattern string
	Pos     int
	Msg     string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %s", e.Pattern, e.Pos, e.Msg)
}

// parser is a recursive-descent parser over the boolean pattern grammar.
// Precedence, low to high: `|` < `&` < `~` < grouping/basic.
type parser struct {
	src string
	pos int
	dir string
}

func (p *parser) fail(msg string) error {
	return &ParseError{Pattern: p.src, Pos: p.pos, Msg: msg}
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

// parseExpr parses the full expression and requires it to consume the
// whole input.
func (p *parser) parseExpr() (exprNode, error) {
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if !p.eof() {
		return nil, p.fail(fmt.Sprintf("unexpected character %q", p.peek()))
	}
	return node, nil
}

func (p *parser) parseOr() (exprNode, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaces()
		if p.eof() || p.peek() != '|' {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &orExpr{lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseAnd() (exprNode, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaces()
		if p.eof() || p.peek() != '&' {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &andExpr{lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseNot() (exprNode, error) {
	p.skipSpaces()
	if !p.eof() && p.peek() == '~' {
		p.pos++
		sub, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &notExpr{sub: sub}, nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (exprNode, error) {
	p.skipSpaces()
	if p.eof() {
		return nil, p.fail("expected a pattern")
	}
	switch c := p.peek(); c {
	case '(':
		p.pos++
		node, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.eof() || p.peek() != ')' {
			return nil, p.fail("unbalanced parenthesis")
		}
		p.pos++
		return node, nil
	case '"':
		return p.parseQuoted()
	case '<':
		return p.parseGlob()
	default:
		if p.consumeWord("true") {
			return &trueExpr{}, nil
		}
		if p.consumeWord("false") {
			return &falseExpr{}, nil
		}
		return nil, p.fail(fmt.Sprintf("unknown operator %q", c))
	}
}

func (p *parser) consumeWord(word string) bool {
	if strings.HasPrefix(p.src[p.pos:], word) {
		p.pos += len(word)
		return true
	}
	return false
}

// parseQuoted parses a double-quoted literal with backslash escapes for
// `"` and `\`.
func (p *parser) parseQuoted() (exprNode, error) {
	start := p.pos
	p.pos++ // opening quote
	var sb strings.Builder
	for !p.eof() {
		switch c := p.peek(); c {
		case '"':
			p.pos++
			value := sb.String()
			if p.dir != "" {
				value = p.dir + "/" + value
			}
			return &litExpr{value: value}, nil
		case '\\':
			p.pos++
			if p.eof() {
				return nil, p.fail("dangling backslash in string literal")
			}
			sb.WriteByte(p.peek())
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	p.pos = start
	return nil, p.fail("unterminated string literal")
}

// parseGlob parses a `<...>` basic pattern into an atom sequence.
func (p *parser) parseGlob() (exprNode, error) {
	start := p.pos
	p.pos++ // opening angle bracket
	atoms, err := p.parseSequence(func(c byte) bool { return c == '>' })
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != '>' {
		return nil, p.fail("unterminated glob pattern")
	}
	p.pos++
	if p.dir != "" {
		atoms = append(literalAtoms(p.dir+"/"), atoms...)
	}
	return &globExpr{atoms: atoms, source: p.src[start:p.pos]}, nil
}

// parseSequence parses glob atoms until stop reports a terminator (which is
// left unconsumed) or the input ends.
func (p *parser) parseSequence(stop func(byte) bool) ([]atom, error) {
	var atoms []atom
	for !p.eof() && !stop(p.peek()) {
		switch c := p.peek(); c {
		case '*':
			p.pos++
			atoms = append(atoms, starAtom{})
		case '?':
			p.pos++
			atoms = append(atoms, oneAtom{})
		case '{':
			alt, err := p.parseAlternation()
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, alt)
		case '}':
			return nil, p.fail("unbalanced closing brace")
		case '[':
			class, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, class)
		case ']':
			return nil, p.fail("unbalanced closing bracket")
		default:
			p.pos++
			atoms = append(atoms, charAtom{c: c})
		}
	}
	return atoms, nil
}

// parseAlternation parses `{a,b,...}`. Each branch is a full glob
// sequence, so alternations nest.
func (p *parser) parseAlternation() (atom, error) {
	p.pos++ // opening brace
	var branches [][]atom
	for {
		branch, err := p.parseSequence(func(c byte) bool { return c == ',' || c == '}' })
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
		if p.eof() {
			return nil, p.fail("unbalanced brace")
		}
		if p.peek() == ',' {
			p.pos++
			continue
		}
		p.pos++ // closing brace
		return altAtom{branches: branches}, nil
	}
}

// parseClass parses `[...]` character ranges. A trailing unescaped `-`
// matches a literal dash.
func (p *parser) parseClass() (atom, error) {
	p.pos++ // opening bracket
	var ranges []byteRange
	for !p.eof() && p.peek() != ']' {
		lo := p.peek()
		p.pos++
		if !p.eof() && p.peek() == '-' {
			// A dash directly before the closing bracket is a
			// literal dash, not a range separator.
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == ']' {
				ranges = append(ranges, byteRange{lo: lo, hi: lo})
				ranges = append(ranges, byteRange{lo: '-', hi: '-'})
				p.pos++
				continue
			}
			p.pos++
			if p.eof() {
				return nil, p.fail("unbalanced bracket")
			}
			hi := p.peek()
			p.pos++
			if hi < lo {
				return nil, p.fail(fmt.Sprintf("invalid range %c-%c", lo, hi))
			}
			ranges = append(ranges, byteRange{lo: lo, hi: hi})
			continue
		}
		ranges = append(ranges, byteRange{lo: lo, hi: lo})
	}
	if p.eof() {
		return nil, p.fail("unbalanced bracket")
	}
	if len(ranges) == 0 {
		return nil, p.fail("empty character class")
	}
	p.pos++ // closing bracket
	return classAtom{ranges: ranges}, nil
}
