package scanner

// ScanRegExp scans a regular-expression literal body and flags. It is
// only ever invoked by the parser after it has decided, from the
// preceding token, that `/` opens a regex rather than a division
// operator; the leading `/` has already been consumed. Body
// well-formedness is a small two-state machine (escape, char class); the
// pattern itself is never semantically validated.
func (s *Scanner) ScanRegExp(allowDotAllFlag bool) (pattern, flags string) {
	bodyStart := s.Offset()

	if !s.scanRegExpBody() {
		return "", ""
	}
	pattern = s.src.FromPositionToCurrent(bodyStart)
	pattern = pattern[:len(pattern)-1] // drop the closing slash

	flagsStart := s.Offset()
	seen := map[byte]bool{}
	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		c, _ := s.PeekRune()
		if !isIdentifierPart(c) {
			break
		}
		switch b {
		case 'g', 'i', 'm', 'u', 'y':
		case 's':
			if !allowDotAllFlag {
				s.fail(regExpFlag(b, s.Offset(), s.Offset()+1))
				return pattern, flags
			}
		default:
			s.fail(regExpFlag(b, s.Offset(), s.Offset()+1))
			return pattern, flags
		}
		if seen[b] {
			s.fail(regExpFlagTwice(b, s.Offset(), s.Offset()+1))
			return pattern, flags
		}
		seen[b] = true
		s.ConsumeByte()
	}
	flags = s.src.FromPositionToCurrent(flagsStart)
	return pattern, flags
}

// scanRegExpBody advances the cursor past the closing, unescaped,
// non-class `/`, returning false (and recording a fatal error) if the
// body runs into a line terminator or end of input first.
func (s *Scanner) scanRegExpBody() bool {
	start := s.Token.Idx0
	inCharClass := false
	for {
		c, ok := s.NextRune()
		if !ok || isLineTerminator(c) {
			s.fail(unterminatedRegExp(start, s.Offset()))
			return false
		}
		switch c {
		case '\\':
			if _, ok := s.NextRune(); !ok {
				s.fail(unterminatedRegExp(start, s.Offset()))
				return false
			}
		case '[':
			inCharClass = true
		case ']':
			inCharClass = false
		case '/':
			if !inCharClass {
				return true
			}
		}
	}
}
