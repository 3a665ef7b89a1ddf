// internal/calc/scan.go
package calc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/resolver/internal/types"
)

// maxLookahead bounds the scanner's pushback queue. The parser needs at
// most one peeked token plus one token it hands back.
const maxLookahead = 2

// Scanner splits a line into tokens. Tokens that were peeked or unread
// live in a small queue owned by the scanner and are served before any
// new text is scanned.
type Scanner struct {
	src   string
	off   int     // byte offset of the first unscanned character
	queue []Token // lookahead, front first
}

// NewScanner returns a scanner over src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, queue: make([]Token, 0, maxLookahead)}
}

// Token consumes and returns the next token.
// At the end of input it keeps returning KindEnd tokens.
func (s *Scanner) Token() (Token, error) {
	if len(s.queue) > 0 {
		tok := s.queue[0]
		s.queue = s.queue[1:]
		return tok, nil
	}
	return s.scan()
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (Token, error) {
	if len(s.queue) > 0 {
		return s.queue[0], nil
	}
	tok, err := s.scan()
	if err != nil {
		return tok, err
	}
	s.queue = append(s.queue, tok)
	return tok, nil
}

// Unread pushes tok back so the next Token call returns it.
// It reports false when the lookahead queue is already full.
func (s *Scanner) Unread(tok Token) bool {
	if len(s.queue) >= maxLookahead {
		return false
	}
	s.queue = append([]Token{tok}, s.queue...)
	return true
}

// Discard consumes leading tokens whose kind is one of kinds.
func (s *Scanner) Discard(kinds ...Kind) error {
	return s.DiscardFunc(func(t Token) bool {
		for _, k := range kinds {
			if t.Kind == k {
				return true
			}
		}
		return false
	})
}

// DiscardFunc consumes leading tokens for which match returns true.
func (s *Scanner) DiscardFunc(match func(Token) bool) error {
	for {
		tok, err := s.Peek()
		if err != nil {
			return err
		}
		if tok.Kind == KindEnd || !match(tok) {
			return nil
		}
		s.queue = s.queue[1:]
	}
}

// Offset returns the byte offset where the next token starts.
func (s *Scanner) Offset() int {
	if len(s.queue) > 0 {
		return s.queue[0].Range.Start
	}
	return s.off
}

// --- Scanning ---

func (s *Scanner) scan() (Token, error) {
	if s.off >= len(s.src) {
		return Token{Kind: KindEnd, Range: types.Range{Start: len(s.src), End: len(s.src)}}, nil
	}

	start := s.off
	c, _ := utf8.DecodeRuneInString(s.src[start:])

	switch {
	case isIdentStart(c):
		s.advanceWhile(isIdentPart)
		return s.token(KindIdent, start), nil
	case isDigit(c):
		s.advanceWhile(isDigit)
		// A dot only belongs to the number when a digit follows it.
		if s.off+1 < len(s.src) && s.src[s.off] == '.' && isDigit(rune(s.src[s.off+1])) {
			s.off++
			s.advanceWhile(isDigit)
		}
		return s.token(KindNumber, start), nil
	case isOperator(c):
		s.advanceWhile(isOperator)
		return s.token(KindOperator, start), nil
	case c == '=':
		s.off++
		return s.token(KindAssign, start), nil
	case c == '(':
		s.off++
		return s.token(KindLParen, start), nil
	case c == ')':
		s.off++
		return s.token(KindRParen, start), nil
	case c == ':':
		s.off++
		return s.token(KindSymbol, start), nil
	case unicode.IsSpace(c):
		s.advanceWhile(unicode.IsSpace)
		return s.token(KindWhitespace, start), nil
	default:
		return s.verbatim(start)
	}
}

func (s *Scanner) token(kind Kind, start int) Token {
	return Token{Kind: kind, Text: s.src[start:s.off], Range: types.Range{Start: start, End: s.off}}
}

func (s *Scanner) advanceWhile(match func(rune) bool) {
	for s.off < len(s.src) {
		c, n := utf8.DecodeRuneInString(s.src[s.off:])
		if !match(c) {
			return
		}
		s.off += n
	}
}

// verbatim accumulates prose until a character that starts another token
// class. A backslash escapes the following character.
func (s *Scanner) verbatim(start int) (Token, error) {
	var b strings.Builder
	for s.off < len(s.src) {
		c, n := utf8.DecodeRuneInString(s.src[s.off:])
		if c != '\\' {
			if startsToken(c) {
				break
			}
			b.WriteRune(c)
			s.off += n
			continue
		}

		at := s.off
		s.off += n
		if s.off >= len(s.src) {
			return Token{}, ErrEndOfInput
		}
		e, en := utf8.DecodeRuneInString(s.src[s.off:])
		r, ok := unescape(e)
		if !ok {
			s.off += en
			return Token{}, &SyntaxError{Offset: at, Msg: "invalid escape sequence \\" + string(e)}
		}
		b.WriteRune(r)
		s.off += en
	}
	if s.off == start {
		return Token{}, ErrAssertionFailed
	}
	return Token{Kind: KindVerbatim, Text: b.String(), Range: types.Range{Start: start, End: s.off}}, nil
}

func unescape(c rune) (rune, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case '"', '{', '(', '@', '/', '\\':
		return c, true
	}
	return 0, false
}

// --- Character classes ---

func isIdentStart(c rune) bool { return c == '_' || unicode.IsLetter(c) }

func isIdentPart(c rune) bool { return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) }

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isOperator(c rune) bool { return strings.ContainsRune("+-*/%", c) }

func startsToken(c rune) bool {
	return isIdentStart(c) || isDigit(c) || isOperator(c) || unicode.IsSpace(c) ||
		c == '=' || c == '(' || c == ')' || c == ':'
}
