package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// asciiStart/asciiContinue are fast-path lookup tables for ASCII
// identifier characters; non-ASCII bytes always read false, sending the
// caller down the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return unicodeid.IsIDContinueUnicode(chr)
}

// scanIdentifierTail scans the remainder of an identifier whose first
// byte (an ASCII identifier-start) the caller has already consumed past
// in spirit (start points at it; the cursor has not advanced over it
// yet, mirroring go-fast's convention of reporting the start position
// before dispatch decides how to read the rest).
func (s *Scanner) scanIdentifierTail() string {
	start := s.src.Offset()
	b, ok := s.PeekByte()
	if !ok || b >= utf8.RuneSelf {
		s.ConsumeRune()
		return s.scanIdentifierTailUnicode(start)
	}
	s.src.SetPosition(start + 1)
	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		if b < utf8.RuneSelf {
			if !asciiContinue[b] {
				if b == '\\' {
					return s.scanIdentifierBackslash(start, false)
				}
				break
			}
			s.src.SetPosition(s.src.Offset() + 1)
			continue
		}
		return s.scanIdentifierTailUnicode(start)
	}
	return s.src.FromPositionToCurrent(start)
}

func (s *Scanner) scanIdentifierTailUnicode(start ast.Idx) string {
	for {
		c, ok := s.PeekRune()
		if !ok {
			break
		}
		if isIdentifierPart(c) {
			s.ConsumeRune()
			continue
		}
		if c == '\\' {
			return s.scanIdentifierBackslash(start, false)
		}
		break
	}
	return s.src.FromPositionToCurrent(start)
}

func (s *Scanner) identifierBackslashHandler() token.Token {
	id := s.scanIdentifierBackslash(s.src.Offset(), true)
	if s.Err != nil {
		return token.Illegal
	}
	if kw, _ := token.LiteralKeyword(id); kw != 0 {
		s.fail(invalidEscapedReservedWord(s.Token.Idx0, s.Offset()))
		return token.Illegal
	}
	return token.Identifier
}

func (s *Scanner) scanIdentifierBackslash(startPos ast.Idx, start bool) string {
	soFar := s.src.FromPositionToCurrent(startPos)
	str := &strings.Builder{}
	str.WriteString(soFar)

	for {
		if !s.AdvanceIfByteEquals('\\') {
			break
		}
		s.identifierUnicodeEscapeSequence(str, start)
		if s.Err != nil {
			break
		}
		start = false

		chunkStart := s.src.Offset()
		for {
			c, ok := s.PeekRune()
			if ok && isIdentifierPart(c) {
				s.ConsumeRune()
				continue
			}
			str.WriteString(s.src.FromPositionToCurrent(chunkStart))
			break
		}
	}

	s.EscapedStr = str.String()
	s.Token.HasEscape = true
	return s.EscapedStr
}
