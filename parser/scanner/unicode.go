package scanner

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wilt-23/cherow/ast"
)

// identifierUnicodeEscapeSequence decodes a `u` escape already positioned
// just after the backslash (i.e. the next byte is 'u') into str, failing
// if the decoded code point cannot legally occupy its position in an
// identifier.
func (s *Scanner) identifierUnicodeEscapeSequence(str *strings.Builder, checkIdentifierStart bool) {
	start := s.Offset()
	if b, ok := s.PeekByte(); !ok || b != 'u' {
		s.fail(invalidUnicodeEscapeSequence(start, s.Offset()))
		return
	}
	s.ConsumeByte()

	value := s.readUnicodeEscapeValue()
	if value < 0 {
		s.fail(invalidUnicodeEscapeSequence(start, s.Offset()))
		return
	}

	ok := isIdentifierPart(value)
	if checkIdentifierStart {
		ok = isIdentifierStart(value)
	}
	if !ok {
		s.fail(invalidUnicodeEscapeSequence(start, s.Offset()))
		return
	}
	str.WriteRune(value)
}

// stringUnicodeEscapeSequence decodes a `u` escape positioned just after
// the backslash-u (i.e. the next byte is '{' or a hex digit) into str.
func (s *Scanner) stringUnicodeEscapeSequence(str *strings.Builder) bool {
	value := s.readUnicodeEscapeValue()
	if value < 0 {
		return false
	}
	str.WriteRune(value)
	return true
}

// readUnicodeEscapeValue decodes either the braced `{H+}` form or the
// fixed-width `HHHH` form (with UTF-16 surrogate-pair combination), and
// returns -1 on any malformed input.
func (s *Scanner) readUnicodeEscapeValue() rune {
	if s.AdvanceIfByteEquals('{') {
		val := s.codePoint()
		if val < 0 || val > utf8.MaxRune {
			return -1
		}
		if !s.AdvanceIfByteEquals('}') {
			return -1
		}
		return val
	}
	return s.surrogatePair()
}

func (s *Scanner) hexFourDigits() rune {
	var val rune
	for i := 0; i < 4; i++ {
		next, ok := s.hexDigit()
		if !ok {
			return -1
		}
		val = val<<4 | next
	}
	return val
}

func (s *Scanner) hexDigit() (rune, bool) {
	chr, ok := s.NextRune()
	if !ok {
		return 0, false
	}
	switch {
	case '0' <= chr && chr <= '9':
		return chr - '0', true
	case 'a' <= chr && chr <= 'f':
		return chr - 'a' + 10, true
	case 'A' <= chr && chr <= 'F':
		return chr - 'A' + 10, true
	}
	return 0, false
}

func (s *Scanner) codePoint() rune {
	val, ok := s.hexDigit()
	if !ok {
		return -1
	}
	for {
		next, ok := s.hexDigit()
		if !ok {
			break
		}
		val = val<<4 | next
		if val > utf8.MaxRune {
			return -1
		}
	}
	return val
}

// surrogatePair decodes a fixed-width `HHHH` escape, combining it with a
// following `\uHHHH` escape when the first half is a UTF-16 high
// surrogate and the second half is a valid low surrogate.
func (s *Scanner) surrogatePair() rune {
	high := s.hexFourDigits()
	if high < 0 {
		return -1
	}
	if !utf16.IsSurrogate(high) {
		return high
	}
	b, ok := s.src.PeekTwoBytes()
	if !ok || b != [2]byte{'\\', 'u'} {
		return high
	}
	checkpoint := s.src
	s.ConsumeByte()
	s.ConsumeByte()
	low := s.hexFourDigits()
	if low < 0 || !utf16.IsSurrogate(low) {
		s.src = checkpoint
		return high
	}
	combined := utf16.DecodeRune(high, low)
	if combined == utf8.RuneError {
		s.src = checkpoint
		return high
	}
	return combined
}

// readStringEscapeSequence decodes one escape sequence (the cursor must
// be positioned just after the backslash) into str, reporting strict
// parameters through octal/ok so the caller can apply the strict-mode
// policy from spec.md §4.2.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder) (octal, ok bool) {
	start := s.Offset() - 1
	chr, hasRune := s.NextRune()
	if !hasRune {
		s.fail(unexpectedEnd(s.Offset()))
		return false, false
	}

	switch chr {
	case lineTerminatorLF, lineSeparator, paragraphSeparator:
		return false, true
	case lineTerminatorCR:
		s.AdvanceIfByteEquals('\n')
		return false, true
	case '\'', '"', '\\':
		str.WriteRune(chr)
		return false, true
	case 'b':
		str.WriteRune('\b')
		return false, true
	case 'f':
		str.WriteRune('\f')
		return false, true
	case 'n':
		str.WriteRune('\n')
		return false, true
	case 'r':
		str.WriteRune('\r')
		return false, true
	case 't':
		str.WriteRune('\t')
		return false, true
	case 'v':
		str.WriteRune('\v')
		return false, true
	case 'x':
		hi, hok := s.hexDigit()
		lo, lok := s.hexDigit()
		if !hok || !lok {
			s.fail(invalidEscapeSequence(start, s.Offset()))
			return false, false
		}
		str.WriteRune(hi<<4 | lo)
		return false, true
	case 'u':
		if !s.stringUnicodeEscapeSequence(str) {
			s.fail(invalidUnicodeEscapeSequence(start, s.Offset()))
			return false, false
		}
		return false, true
	case '0':
		if c, ok := s.PeekByte(); ok && c >= '0' && c <= '9' {
			return s.readLegacyOctalEscape(str, chr, start)
		}
		str.WriteRune(0)
		return false, true
	case '1', '2', '3', '4', '5', '6', '7':
		return s.readLegacyOctalEscape(str, chr, start)
	case '8', '9':
		s.fail(invalidEscapeSequence(start, s.Offset()))
		return false, false
	}

	str.WriteRune(chr)
	return false, true
}

// readLegacyOctalEscape decodes a \0-\7 escape, consuming up to two more
// octal digits; legal only outside strict mode, a policy the caller
// enforces using the returned octal flag.
func (s *Scanner) readLegacyOctalEscape(str *strings.Builder, first rune, start ast.Idx) (octal, ok bool) {
	value := first - '0'
	for i := 0; i < 2; i++ {
		c, peeked := s.PeekByte()
		if !peeked || c < '0' || c > '7' {
			break
		}
		next := value*8 + rune(c-'0')
		if next > 0xFF {
			break
		}
		value = next
		s.ConsumeByte()
	}
	str.WriteRune(value)
	return true, true
}
