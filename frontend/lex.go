package frontend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// escapeLiteral backslash-escapes every character of a literal token
// string so it can be added to the lexer as its own regex — the same
// trick the teacher's lexmachine adapter uses for punctuation and
// keywords (lr/scanner/lexmach/lexmachine.go's NewLMAdapter).
func escapeLiteral(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// Tokenize runs the full lexmachine-based scan of src, returning every
// token (EOF included, as the final entry) or the first lexical error
// encountered. Input that matches no token pattern is skipped without an
// error; other lexical errors, such as an unterminated code block, are
// returned. file is used only to prefix the returned error message; token
// positions carry line and column only.
func Tokenize(file string, src []byte) ([]Token, error) {
	lexer := lexmachine.NewLexer()

	add := func(pattern string, kind Kind) {
		lexer.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return s.Token(int(kind), string(m.Bytes), m), nil
		})
	}

	// keywords before the general identifier pattern, per lexmachine's
	// usual longest/first-added-wins disambiguation for fixed literals.
	add(escapeLiteral("%%"), PercentPercent)
	add(escapeLiteral("%term"), PercentTerm)
	add(escapeLiteral("%head"), PercentHead)
	add(escapeLiteral("%tail"), PercentTail)
	add(escapeLiteral("%type"), PercentType)

	add(escapeLiteral(":"), Colon)
	add(escapeLiteral(","), Comma)
	add(escapeLiteral("("), LParen)
	add(escapeLiteral(")"), RParen)
	add(escapeLiteral("["), LBracket)
	add(escapeLiteral("]"), RBracket)

	lexer.Add([]byte(`--[^\n]*`), lexmachine.Skip)
	lexer.Add([]byte(`( |\t|\n|\r)+`), lexmachine.Skip)

	lexer.Add([]byte(`[0-9]+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(Int), string(m.Bytes), m), nil
	})
	lexer.Add([]byte(`"([^"\\]|\\.)*"`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(String), string(m.Bytes), m), nil
	})
	lexer.Add([]byte(`'([^'\\]|\\.)'`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(Char), string(m.Bytes), m), nil
	})
	lexer.Add([]byte(`[A-Za-z][A-Za-z0-9_]*`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(Ident), string(m.Bytes), m), nil
	})

	// a {: ... :} code block is opened by a fixed two-byte marker and
	// then scanned by hand to its closing ":}" — lexmachine's regex
	// engine has no non-greedy repetition, so the bulk of the block is
	// consumed manually against the captured source, advancing the
	// scanner's text counter past it.
	lexer.Add([]byte(`\{\:`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		start := s.TC
		end := strings.Index(string(src[start:]), ":}")
		if end < 0 {
			return nil, fmt.Errorf("unterminated code block starting at byte %d", start)
		}
		body := string(src[start : start+end])
		s.TC = start + end + 2
		return s.Token(int(Code), body, m), nil
	})

	if err := lexer.Compile(); err != nil {
		tracer().Errorf("frontend: error compiling lexer DFA: %v", err)
		return nil, err
	}

	scanner, err := lexer.Scanner(src)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				scanner.TC = ui.FailTC
				continue
			}
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, toToken(t))
	}
	tokens = append(tokens, Token{Kind: EOF, Pos: Pos{}})
	return tokens, nil
}

func toToken(t *lexmachine.Token) Token {
	kind := Kind(t.Type)
	pos := Pos{Line: t.StartLine, Col: t.StartColumn}
	switch kind {
	case Int:
		v, _ := strconv.ParseInt(string(t.Lexeme), 10, 64)
		return Token{Kind: Int, Text: string(t.Lexeme), Int: v, Pos: pos}
	case String:
		unq, err := strconv.Unquote(string(t.Lexeme))
		if err != nil {
			unq = string(t.Lexeme)
		}
		return Token{Kind: String, Text: unq, Pos: pos}
	case Char:
		raw := string(t.Lexeme)
		var r rune
		if len(raw) >= 3 {
			unq, err := strconv.Unquote(raw)
			if err == nil && len(unq) > 0 {
				r = []rune(unq)[0]
			} else {
				r = []rune(raw)[1]
			}
		}
		return Token{Kind: Char, Text: raw, Char: r, Pos: pos}
	case Code:
		return Token{Kind: Code, Text: t.Value.(string), Pos: pos}
	default:
		return Token{Kind: kind, Text: string(t.Lexeme), Pos: pos}
	}
}
