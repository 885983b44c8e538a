package scanner

import "github.com/wilt-23/cherow/token"

// ScanJSXText scans raw JSX child text up to the next `<`, `{`, or `}`,
// none of which are consumed. Unlike every other token kind, JSXText is
// never reached through Next's dispatch loop — the parser calls this
// directly once it knows, from the surrounding element, that text is
// legal here rather than an expression.
func (s *Scanner) ScanJSXText() Token {
	start := s.Offset()
	for {
		b, ok := s.PeekByte()
		if !ok || b == '<' || b == '{' || b == '}' {
			break
		}
		s.ConsumeByte()
	}
	s.Token.Idx0 = start
	s.Token.Idx1 = s.Offset()
	s.Token.Kind = token.JSXText
	return s.Token
}

// ScanJSXIdentifier scans a JSX tag/attribute name, which unlike a
// regular identifier may contain ASCII hyphens (`data-foo`).
func (s *Scanner) ScanJSXIdentifier() Token {
	start := s.Offset()
	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		if b == '-' || asciiContinue[b] || b >= 0x80 {
			s.ConsumeByte()
			continue
		}
		break
	}
	s.Token.Idx0 = start
	s.Token.Idx1 = s.Offset()
	s.Token.Kind = token.Identifier
	return s.Token
}
