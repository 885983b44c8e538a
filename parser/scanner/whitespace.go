package scanner

import "github.com/wilt-23/cherow/token"

// isWhiteSpace reports whether chr is one of the Unicode WhiteSpace code
// points recognized between tokens: tab (0x9), VT (0xB), FF (0xC), space
// (0x20), NBSP (0xA0), Ogham space mark (0x1680), the en/em quad through
// hair-space block (0x2000-0x200A), narrow NBSP (0x202F), mathematical
// space (0x205F), ideographic space (0x3000), and zero-width NBSP / BOM
// (0xFEFF).
func isWhiteSpace(chr rune) bool {
	switch chr {
	case 0x0009, 0x000B, 0x000C, 0x0020, 0x00A0, 0x1680,
		0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005,
		0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
		0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return false
}

// lineTerminatorLF, lineTerminatorCR, lineSeparator, and paragraphSeparator
// are the four code points that count as newlines.
const (
	lineTerminatorLF   rune = 0x000A
	lineTerminatorCR   rune = 0x000D
	lineSeparator      rune = 0x2028
	paragraphSeparator rune = 0x2029
)

func isLineTerminator(chr rune) bool {
	switch chr {
	case lineTerminatorLF, lineTerminatorCR, lineSeparator, paragraphSeparator:
		return true
	}
	return false
}

// handleLineBreak consumes one newline (LF, CR, optionally CR+LF, LS, PS)
// and the run of plain whitespace/newlines that follows it, leaving the
// cursor at the next candidate token.
func (s *Scanner) handleLineBreak() token.Token {
	s.Token.OnNewLine = true
	for {
		c, ok := s.PeekRune()
		if !ok {
			break
		}
		if c == lineTerminatorCR {
			s.ConsumeRune()
			s.AdvanceIfByteEquals('\n')
			continue
		}
		if isLineTerminator(c) || isWhiteSpace(c) {
			s.ConsumeRune()
			continue
		}
		break
	}
	return token.Skip
}
