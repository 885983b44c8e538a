package scanner

import (
	"strings"

	"github.com/wilt-23/cherow/token"
)

// ScanTemplate scans a template literal fragment starting just after the
// opening delimiter (a backtick for the head, a `}` resuming after an
// interpolation for a middle/tail fragment). It stops at an unescaped
// backtick (close) or an unescaped `${` (continue), producing
// NoSubstitutionTemplate/TemplateTail or TemplateHead/TemplateMiddle
// respectively, and records the cooked text in EscapedStr whenever an
// escape or a CRLF normalization occurred.
func (s *Scanner) ScanTemplate(resuming bool) token.Token {
	start := s.Token.Idx0
	hasCooked := false
	var builder strings.Builder
	chunkStart := s.Offset()

	head := token.NoSubstitutionTemplate
	mid := token.TemplateHead
	if resuming {
		head = token.TemplateTail
		mid = token.TemplateMiddle
	}

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.fail(unterminatedTemplateLiteral(start, s.Offset()))
			return token.Illegal
		}
		switch b {
		case '`':
			if hasCooked {
				builder.WriteString(s.src.FromPositionToCurrent(chunkStart))
				s.EscapedStr = builder.String()
				s.Token.HasEscape = true
			}
			s.ConsumeByte()
			return head
		case '$':
			if two, ok := s.src.PeekTwoBytes(); ok && two[1] == '{' {
				if hasCooked {
					builder.WriteString(s.src.FromPositionToCurrent(chunkStart))
					s.EscapedStr = builder.String()
					s.Token.HasEscape = true
				}
				s.ConsumeByte()
				s.ConsumeByte()
				return mid
			}
			s.ConsumeByte()
		case '\\':
			if !hasCooked {
				builder.WriteString(s.src.FromPositionToCurrent(chunkStart))
			}
			hasCooked = true
			s.ConsumeByte()
			if _, ok := s.readStringEscapeSequence(&builder); !ok {
				return token.Illegal
			}
			chunkStart = s.Offset()
		case '\r':
			if !hasCooked {
				builder.WriteString(s.src.FromPositionToCurrent(chunkStart))
			}
			hasCooked = true
			s.ConsumeByte()
			s.AdvanceIfByteEquals('\n')
			builder.WriteByte('\n')
			chunkStart = s.Offset()
		default:
			if _, ok := s.NextRune(); !ok {
				s.fail(unterminatedTemplateLiteral(start, s.Offset()))
				return token.Illegal
			}
		}
	}
}
