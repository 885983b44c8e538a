package scanner

import (
	"unicode/utf8"

	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// readDot disambiguates `.` (Period), `...` (Ellipsis), and a decimal
// literal starting with a fractional point (`.5`). The leading `.` has
// already been consumed.
func (s *Scanner) readDot() token.Token {
	start := s.Token.Idx0
	if two, ok := s.src.PeekTwoBytes(); ok && two == [2]byte{'.', '.'} {
		s.ConsumeByte()
		s.ConsumeByte()
		return token.Ellipsis
	}
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		return s.decLitAfterDecPointAfterDigits(start)
	}
	return token.Period
}

// readZero handles a number literal whose first digit is 0: hex/octal/
// binary prefixes, a legacy-octal run, a BigInt `0n`, or a lone `0`.
func (s *Scanner) readZero() token.Token {
	start := s.Token.Idx0
	b, ok := s.PeekByte()
	if !ok {
		return s.checkAfterNumericLiteral(token.Number)
	}

	switch b {
	case 'b', 'B':
		return s.readNonDecimal(2, start)
	case 'o', 'O':
		return s.readNonDecimal(8, start)
	case 'x', 'X':
		return s.readNonDecimal(16, start)
	case 'e', 'E':
		s.ConsumeByte()
		s.readDecExp(start)
		return s.checkAfterNumericLiteral(token.Number)
	case '.':
		s.ConsumeByte()
		return s.decLitAfterDecPointAfterDigits(start)
	case 'n':
		s.ConsumeByte()
		return s.checkAfterNumericLiteral(token.Number)
	}

	if b >= '0' && b <= '9' {
		return s.readLegacyOctal(start)
	}
	return s.checkAfterNumericLiteral(token.Number)
}

// decimalLiteralAfterFirstDigit continues a decimal literal whose first
// digit the caller already consumed.
func (s *Scanner) decimalLiteralAfterFirstDigit() token.Token {
	start := s.Token.Idx0
	s.decimalDigitsAfterFirstDigit(start)
	if s.Err != nil {
		return token.Illegal
	}
	if s.AdvanceIfByteEquals('.') {
		return s.decLitAfterDecPointAfterDigits(start)
	}
	if s.AdvanceIfByteEquals('n') {
		return s.checkAfterNumericLiteral(token.Number)
	}
	s.optionalExp(start)
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) readNonDecimal(base int, start ast.Idx) token.Token {
	s.ConsumeByte() // the x/o/b letter

	if b, ok := s.PeekByte(); !ok || digitValue(b) >= base {
		s.fail(invalidNumberEnd(start, s.Offset()))
		return token.Illegal
	}
	s.ConsumeByte()

	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		if b == '_' {
			s.ConsumeByte()
			if b, ok := s.PeekByte(); !ok || digitValue(b) >= base {
				s.fail(invalidNumberEnd(start, s.Offset()))
				return token.Illegal
			}
			continue
		}
		if digitValue(b) >= base {
			break
		}
		s.ConsumeByte()
	}

	s.AdvanceIfByteEquals('n')
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) readLegacyOctal(start ast.Idx) token.Token {
	for {
		b, ok := s.PeekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		s.ConsumeByte()
	}

	if b, ok := s.PeekByte(); ok {
		switch b {
		case '.':
			s.ConsumeByte()
			return s.decLitAfterDecPointAfterDigits(start)
		case 'e', 'E':
			s.ConsumeByte()
			s.readDecExp(start)
		}
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) readDecExp(start ast.Idx) {
	if b, ok := s.PeekByte(); ok && (b == '-' || b == '+') {
		s.ConsumeByte()
	}
	s.readDecimalDigits(start)
}

func (s *Scanner) readDecimalDigits(start ast.Idx) {
	if b, ok := s.PeekByte(); !ok || !isDecimalDigit(b) {
		s.fail(invalidNumberEnd(start, s.Offset()))
		return
	}
	s.ConsumeByte()
	s.decimalDigitsAfterFirstDigit(start)
}

func (s *Scanner) decimalDigitsAfterFirstDigit(start ast.Idx) {
	for {
		b, ok := s.PeekByte()
		if !ok {
			return
		}
		switch {
		case b == '_':
			s.ConsumeByte()
			if b, ok := s.PeekByte(); !ok || !isDecimalDigit(b) {
				s.fail(invalidNumberEnd(start, s.Offset()))
				return
			}
		case isDecimalDigit(b):
			s.ConsumeByte()
		default:
			return
		}
	}
}

func (s *Scanner) decLitAfterDecPointAfterDigits(start ast.Idx) token.Token {
	s.optionalDecDigits(start)
	if s.Err != nil {
		return token.Illegal
	}
	s.optionalExp(start)
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) optionalDecDigits(start ast.Idx) {
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		s.ConsumeByte()
		s.decimalDigitsAfterFirstDigit(start)
	}
}

func (s *Scanner) optionalExp(start ast.Idx) {
	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.ConsumeByte()
		s.readDecExp(start)
	}
}

// checkAfterNumericLiteral rejects an identifier character immediately
// following a number literal (`3in` is not `3 in`, it's an error).
func (s *Scanner) checkAfterNumericLiteral(kind token.Token) token.Token {
	b, ok := s.PeekByte()
	if !ok {
		return kind
	}
	if b < utf8.RuneSelf {
		if !asciiContinue[b] {
			return kind
		}
	} else if c, _ := s.PeekRune(); !isIdentifierStart(c) {
		return kind
	}

	start := s.Token.Idx0
	for {
		c, ok := s.PeekRune()
		if !ok || !isIdentifierPart(c) {
			break
		}
		s.ConsumeRune()
	}
	s.fail(invalidNumberEnd(start, s.Offset()))
	return token.Illegal
}

func isDecimalDigit(chr byte) bool {
	return chr >= '0' && chr <= '9'
}

func digitValue(chr byte) int {
	switch {
	case chr >= '0' && chr <= '9':
		return int(chr - '0')
	case chr >= 'a' && chr <= 'f':
		return int(chr-'a') + 10
	case chr >= 'A' && chr <= 'F':
		return int(chr-'A') + 10
	}
	return 16
}
