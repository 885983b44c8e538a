package scanner

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// Context carries the handful of lexer-visible parsing modes that change
// how Next dispatches: HTML comments are only recognized outside a
// module, and `>` never begins a shift/comparison operator while
// scanning JSX child text.
type Context struct {
	Module   bool
	JSXChild bool
}

// Scanner produces one Token per Next call from a Source cursor. Fatal
// lexical errors are sticky: once Err is set, Next keeps returning
// token.Eof until Err is cleared, so the parser only has to check it once
// per error.
type Scanner struct {
	src Source

	Token      Token
	EscapedStr string
	Err        error

	// Comments accumulates the spans of every comment skipped since the
	// last time the parser drained it. The parser, not the scanner, knows
	// whether collection was asked for and owns the source text needed to
	// turn a span into Comment.Text.
	Comments []CommentSpan
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: NewSource(src)}
}

func (s *Scanner) fail(err error) {
	if s.Err == nil {
		s.Err = err
	}
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

func (s *Scanner) EndOffset() ast.Idx {
	return s.src.EndOffset()
}

func (s *Scanner) NextRune() (rune, bool)   { return s.src.NextRune() }
func (s *Scanner) NextByte() (byte, bool)   { return s.src.NextByte() }
func (s *Scanner) PeekRune() (rune, bool)   { return s.src.PeekRune() }
func (s *Scanner) PeekByte() (byte, bool)   { return s.src.PeekByte() }

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) ConsumeByte() byte {
	return s.src.NextByteUnchecked()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}

// Checkpoint is a value-type snapshot sufficient to rewind the scanner to
// an earlier point, used by the parser's speculative-lookahead sites.
type Checkpoint struct {
	pos   ast.Idx
	token Token
	err   error
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{pos: s.src.Offset(), token: s.Token, err: s.Err}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.SetPosition(c.pos)
	s.Token = c.token
	s.Err = c.err
}

// RewindForRegExp repositions the cursor to just past the `/` at slashIdx
// so the parser can turn a Slash/QuotientAssign token it already scanned
// into a regex literal once it decides from context that division wasn't
// meant. slashIdx must be the offset of the `/` itself.
func (s *Scanner) RewindForRegExp(slashIdx ast.Idx) {
	s.src.SetPosition(slashIdx + 1)
	s.Token.Idx0 = slashIdx
	s.Err = nil
}

// Next scans and returns the next token, skipping whitespace and
// comments. If a fatal lexical error was already recorded, it keeps
// returning token.Eof without touching the cursor further.
func (s *Scanner) Next(ctx Context) Token {
	if s.Err != nil {
		s.Token.Kind = token.Eof
		return s.Token
	}

	s.Token.HasEscape = false
	s.Token.HasOctalEscape = false
	s.Token.OnNewLine = false

	for {
		s.Token.Idx0 = s.src.Offset()

		b, ok := s.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		kind := s.dispatch(b, ctx)
		if s.Err != nil {
			s.Token.Kind = token.Eof
			break
		}
		if kind != token.Skip {
			s.Token.Kind = kind
			break
		}
	}
	s.Token.Idx1 = s.src.Offset()
	return s.Token
}

func (s *Scanner) dispatch(b byte, ctx Context) token.Token {
	switch b {
	case '\t', ' ':
		s.ConsumeByte()
		for {
			c, ok := s.PeekByte()
			if !ok || (c != ' ' && c != '\t') {
				break
			}
			s.ConsumeByte()
		}
		return token.Skip

	case '\n', '\r':
		s.ConsumeByte()
		return s.handleLineBreak()

	case 0x0B, 0x0C:
		s.ConsumeByte()
		return token.Skip

	case '(':
		s.ConsumeByte()
		return token.LeftParenthesis
	case ')':
		s.ConsumeByte()
		return token.RightParenthesis
	case ',':
		s.ConsumeByte()
		return token.Comma
	case ':':
		s.ConsumeByte()
		return token.Colon
	case ';':
		s.ConsumeByte()
		return token.Semicolon
	case '[':
		s.ConsumeByte()
		return token.LeftBracket
	case ']':
		s.ConsumeByte()
		return token.RightBracket
	case '{':
		s.ConsumeByte()
		return token.LeftBrace
	case '}':
		s.ConsumeByte()
		return token.RightBrace
	case '~':
		s.ConsumeByte()
		return token.BitwiseNot

	case '!':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('=') {
			if s.AdvanceIfByteEquals('=') {
				return token.StrictNotEqual
			}
			return token.NotEqual
		}
		return token.Not

	case '%':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('=') {
			return token.RemainderAssign
		}
		return token.Remainder

	case '&':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('&') {
			if s.AdvanceIfByteEquals('=') {
				return token.LogicalAndAssign
			}
			return token.LogicalAnd
		}
		if s.AdvanceIfByteEquals('=') {
			return token.AndAssign
		}
		return token.And

	case '*':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('*') {
			if s.AdvanceIfByteEquals('=') {
				return token.ExponentAssign
			}
			return token.Exponent
		}
		if s.AdvanceIfByteEquals('=') {
			return token.MultiplyAssign
		}
		return token.Multiply

	case '+':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('+') {
			return token.Increment
		}
		if s.AdvanceIfByteEquals('=') {
			return token.AddAssign
		}
		return token.Plus

	case '-':
		s.ConsumeByte()
		if two, ok := s.src.PeekTwoBytes(); ok && two == [2]byte{'-', '>'} && (!ctx.Module) && s.Token.OnNewLine {
			start := s.Token.Idx0
			s.ConsumeByte()
			s.ConsumeByte()
			s.skipSingleLineComment()
			s.recordComment(ast.LineComment, start)
			return token.Skip
		}
		if s.AdvanceIfByteEquals('-') {
			return token.Decrement
		}
		if s.AdvanceIfByteEquals('=') {
			return token.SubtractAssign
		}
		return token.Minus

	case '.':
		s.ConsumeByte()
		return s.readDot()

	case '/':
		s.ConsumeByte()
		if b2, ok := s.PeekByte(); ok {
			switch b2 {
			case '/':
				start := s.Token.Idx0
				s.ConsumeByte()
				s.skipSingleLineComment()
				s.recordComment(ast.LineComment, start)
				return token.Skip
			case '*':
				start := s.Token.Idx0
				s.ConsumeByte()
				if s.skipMultiLineComment() {
					s.Token.OnNewLine = true
				}
				s.recordComment(ast.BlockComment, start)
				return token.Skip
			}
		}
		if s.AdvanceIfByteEquals('=') {
			return token.QuotientAssign
		}
		return token.Slash

	case '<':
		s.ConsumeByte()
		if !ctx.Module {
			if b3, ok := s.peekThreeBytes(); ok && b3 == [3]byte{'!', '-', '-'} {
				start := s.Token.Idx0
				s.ConsumeByte()
				s.ConsumeByte()
				s.ConsumeByte()
				s.skipSingleLineComment()
				s.recordComment(ast.LineComment, start)
				return token.Skip
			}
		}
		if s.AdvanceIfByteEquals('<') {
			if s.AdvanceIfByteEquals('=') {
				return token.ShiftLeftAssign
			}
			return token.ShiftLeft
		}
		if s.AdvanceIfByteEquals('=') {
			return token.LessOrEqual
		}
		return token.Less

	case '=':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('=') {
			if s.AdvanceIfByteEquals('=') {
				return token.StrictEqual
			}
			return token.Equal
		}
		if s.AdvanceIfByteEquals('>') {
			return token.Arrow
		}
		return token.Assign

	case '>':
		s.ConsumeByte()
		if ctx.JSXChild {
			return token.Greater
		}
		if s.AdvanceIfByteEquals('=') {
			return token.GreaterOrEqual
		}
		if s.AdvanceIfByteEquals('>') {
			if s.AdvanceIfByteEquals('=') {
				return token.ShiftRightAssign
			}
			if s.AdvanceIfByteEquals('>') {
				if s.AdvanceIfByteEquals('=') {
					return token.UnsignedShiftRightAssign
				}
				return token.UnsignedShiftRight
			}
			return token.ShiftRight
		}
		return token.Greater

	case '?':
		s.ConsumeByte()
		if two, ok := s.src.PeekTwoBytes(); ok {
			switch two[0] {
			case '?':
				if two[1] == '=' {
					s.ConsumeByte()
					s.ConsumeByte()
					return token.CoalesceAssign
				}
				s.ConsumeByte()
				return token.Coalesce
			case '.':
				if two[1] < '0' || two[1] > '9' {
					s.ConsumeByte()
					return token.QuestionDot
				}
				return token.QuestionMark
			}
			return token.QuestionMark
		}
		if b2, ok := s.PeekByte(); ok {
			switch b2 {
			case '?':
				s.ConsumeByte()
				return token.Coalesce
			case '.':
				s.ConsumeByte()
				return token.QuestionDot
			}
		}
		return token.QuestionMark

	case '^':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('=') {
			return token.ExclusiveOrAssign
		}
		return token.ExclusiveOr

	case '|':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('|') {
			if s.AdvanceIfByteEquals('=') {
				return token.LogicalOrAssign
			}
			return token.LogicalOr
		}
		if s.AdvanceIfByteEquals('=') {
			return token.OrAssign
		}
		return token.Or

	case '"':
		s.ConsumeByte()
		return s.ScanStringLiteral('"')
	case '\'':
		s.ConsumeByte()
		return s.ScanStringLiteral('\'')
	case '`':
		s.ConsumeByte()
		return s.ScanTemplate(false)

	case '#':
		if s.src.Offset() == 0 {
			if two, ok := s.src.PeekTwoBytes(); ok && two[1] == '!' {
				s.ConsumeByte()
				s.ConsumeByte()
				s.skipSingleLineComment()
				return token.Skip
			}
		}
		s.ConsumeByte()
		s.scanIdentifierTail()
		return token.PrivateIdentifier

	case '\\':
		return s.identifierBackslashHandler()

	case '0':
		s.ConsumeByte()
		return s.readZero()
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.ConsumeByte()
		return s.decimalLiteralAfterFirstDigit()

	case '$', '_':
		return s.scanPlainIdentifier()
	}

	if b < 0x80 {
		if b < 0x20 || b == 0x7f {
			s.fail(invalidCharacter(rune(b), s.Token.Idx0, s.Offset()+1))
			return token.Illegal
		}
		if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
			return s.scanPlainIdentifier()
		}
		s.fail(invalidCharacter(rune(b), s.Token.Idx0, s.Offset()+1))
		return token.Illegal
	}

	c, _ := s.PeekRune()
	if isLineTerminator(c) {
		s.ConsumeRune()
		return s.handleLineBreak()
	}
	if isWhiteSpace(c) {
		s.ConsumeRune()
		return token.Skip
	}
	if isIdentifierStart(c) {
		return s.scanPlainIdentifier()
	}
	s.fail(invalidCharacter(c, s.Token.Idx0, s.Offset()+1))
	return token.Illegal
}

// scanPlainIdentifier scans an identifier/keyword that started with a
// plain (non-escaped) character, then resolves the keyword table once
// for both this path and the escaped-identifier path in
// identifier.go, rather than duplicating a per-letter keyword switch.
func (s *Scanner) scanPlainIdentifier() token.Token {
	text := s.scanIdentifierTail()
	if s.Err != nil {
		return token.Illegal
	}
	if s.Token.HasEscape {
		if kw, _ := token.LiteralKeyword(text); kw != 0 {
			s.fail(invalidEscapedReservedWord(s.Token.Idx0, s.Offset()))
			return token.Illegal
		}
		return token.Identifier
	}
	return token.MatchKeyword(text)
}

func (s *Scanner) peekThreeBytes() ([3]byte, bool) {
	two, ok := s.src.PeekTwoBytes()
	if !ok {
		return [3]byte{}, false
	}
	third := s.src.Offset() + 2
	if third >= s.src.EndOffset() {
		return [3]byte{}, false
	}
	return [3]byte{two[0], two[1], s.src.ReadPosition(third)}, true
}
