package scanner

import (
	"strings"

	"github.com/wilt-23/cherow/token"
)

// ScanStringLiteral scans a single/double-quoted string literal whose
// opening quote the caller has already consumed. It returns token.String,
// or token.Illegal on failure. The cooked value goes to EscapedStr (with
// HasEscape set) only when the literal contained an escape; otherwise both
// are left unset, so the caller can fall back to a raw slice.
func (s *Scanner) ScanStringLiteral(quote byte) token.Token {
	start := s.Token.Idx0
	hasEscape := false
	var builder strings.Builder
	chunkStart := s.Offset()

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.fail(unterminatedString(start, s.Offset()))
			return token.Illegal
		}
		if b == quote {
			if hasEscape {
				builder.WriteString(s.src.FromPositionToCurrent(chunkStart))
				s.EscapedStr = builder.String()
				s.Token.HasEscape = true
			}
			s.ConsumeByte()
			return token.String
		}
		if b == '\\' {
			if !hasEscape {
				builder.WriteString(s.src.FromPositionToCurrent(chunkStart))
			}
			hasEscape = true
			s.ConsumeByte()
			octal, ok := s.readStringEscapeSequence(&builder)
			if !ok {
				return token.Illegal
			}
			if octal {
				s.Token.HasOctalEscape = true
			}
			chunkStart = s.Offset()
			continue
		}
		c, ok := s.PeekRune()
		if !ok || isLineTerminator(c) {
			s.fail(unterminatedString(start, s.Offset()))
			return token.Illegal
		}
		s.ConsumeRune()
	}
}
