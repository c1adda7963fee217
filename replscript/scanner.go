package replscript

import (
	"bytes"
	"fmt"
	"io"
	"unicode"
)

const (
	eofRune = -1
	errRune = -2
)

// Scanner turns source text into a stream of Tokens. Modeled on the
// teacher's wast.Scanner: a rune-at-a-time peek/next/match loop that tracks
// line/column for error messages and collects (rather than panics on)
// lexical errors.
type Scanner struct {
	inBuf *bytes.Buffer

	ch  rune
	eof bool

	Line   int
	Column int

	Errors []error
}

// NewScanner returns a Scanner over src.
func NewScanner(src []byte) *Scanner {
	return &Scanner{
		inBuf: bytes.NewBuffer(src),
		Line:  1,
		Column: 1,
	}
}

func (s *Scanner) raise(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.raise(&ScanError{Line: s.Line, Column: s.Column, Msg: fmt.Sprintf(format, args...)})
}

func (s *Scanner) peek() rune {
	if s.eof {
		return eofRune
	}
	r, _, err := s.inBuf.ReadRune()
	defer s.inBuf.UnreadRune()
	switch {
	case err == io.EOF:
		return eofRune
	case err != nil:
		s.raise(err)
		return errRune
	}
	return r
}

func (s *Scanner) next() rune {
	if s.eof {
		return eofRune
	}
	r, _, err := s.inBuf.ReadRune()
	switch {
	case err == io.EOF:
		s.eof = true
		s.ch = eofRune
		return eofRune
	case err != nil:
		s.raise(err)
		return errRune
	}
	if r == '\n' {
		s.Column = 0
		s.Line++
	}
	s.Column++
	s.ch = r
	return r
}

func (s *Scanner) match(r rune) bool {
	if s.peek() == r {
		s.next()
		return true
	}
	return false
}

func (s *Scanner) matchIf(f func(rune) bool) bool {
	if f(s.peek()) {
		s.next()
		return true
	}
	return false
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r) || r == '-' || r == '_' || r == '.' || r == ':'
}

// Next returns the next token, or a Kind EOF token once the source is
// exhausted.
func (s *Scanner) Next() Token {
	for s.matchIf(isSpace) {
	}

	tok := Token{Line: s.Line, Column: s.Column}

	switch {
	case s.peek() == eofRune:
		tok.Kind = EOF
		return tok
	case s.match(';'):
		for s.peek() != eofRune && s.peek() != '\n' {
			s.next()
		}
		return s.Next()
	case s.match('('):
		tok.Kind = LPAR
		tok.Text = "("
		return tok
	case s.match(')'):
		tok.Kind = RPAR
		tok.Text = ")"
		return tok
	case s.match('"'):
		return s.scanString(tok)
	case s.matchIf(isDigit):
		return s.scanNumber(tok)
	case s.matchIf(isIdentRune):
		return s.scanIdent(tok)
	default:
		s.errorf("unexpected character %q", s.peek())
		s.next()
		return s.Next()
	}
}

func (s *Scanner) scanString(tok Token) Token {
	tok.Kind = STRING
	var buf []rune
	for {
		switch {
		case s.peek() == eofRune:
			s.errorf("unclosed string literal")
			tok.Text = string(buf)
			return tok
		case s.match('"'):
			tok.Text = string(buf)
			return tok
		case s.match('\\'):
			switch s.next() {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			default:
				buf = append(buf, s.ch)
			}
		default:
			s.next()
			buf = append(buf, s.ch)
		}
	}
}

func (s *Scanner) scanNumber(tok Token) Token {
	tok.Kind = NUMBER
	buf := []rune{s.ch}
	if s.ch == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.next()
		buf = append(buf, s.ch)
		for s.matchIf(isHexDigit) {
			buf = append(buf, s.ch)
		}
		tok.Text = string(buf)
		return tok
	}
	for s.matchIf(isDigit) {
		buf = append(buf, s.ch)
	}
	tok.Text = string(buf)
	return tok
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (s *Scanner) scanIdent(tok Token) Token {
	tok.Kind = IDENT
	buf := []rune{s.ch}
	for s.matchIf(isIdentRune) {
		buf = append(buf, s.ch)
	}
	tok.Text = string(buf)
	return tok
}

// ScanError is a lexical error tied to a source position.
type ScanError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}
