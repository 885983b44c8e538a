package scanner

import "github.com/wilt-23/cherow/ast"

// CommentSpan records where a skipped comment started and ended so the
// parser can collect it when the Comments option is set, without the
// scanner itself knowing about options or holding the source text.
type CommentSpan struct {
	Kind       ast.CommentKind
	Start, End ast.Idx
}

func (s *Scanner) recordComment(kind ast.CommentKind, start ast.Idx) {
	s.Comments = append(s.Comments, CommentSpan{Kind: kind, Start: start, End: s.Offset()})
}

// skipSingleLineComment consumes up to, but not including, the next line
// terminator (or end of input), so the newline itself is still seen by
// handleLineBreak / Next's ASI bookkeeping.
func (s *Scanner) skipSingleLineComment() {
	for {
		c, ok := s.PeekRune()
		if !ok || isLineTerminator(c) {
			return
		}
		s.ConsumeRune()
	}
}

// skipMultiLineComment consumes up to and including the closing `*/`.
// hasLineTerminator reports whether a newline was crossed, since a
// multi-line comment spanning lines still counts toward ASI the same way
// a bare newline would.
func (s *Scanner) skipMultiLineComment() (hasLineTerminator bool) {
	for {
		c, ok := s.NextRune()
		if !ok {
			s.fail(unterminatedMultiLineComment(s.Token.Idx0, s.Offset()))
			return hasLineTerminator
		}
		if isLineTerminator(c) {
			hasLineTerminator = true
			continue
		}
		if c == '*' && s.AdvanceIfByteEquals('/') {
			return hasLineTerminator
		}
	}
}
