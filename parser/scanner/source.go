package scanner

import (
	"unicode/utf8"

	"github.com/wilt-23/cherow/ast"
)

// Source is a forward-only byte cursor over the source text. Unlike the
// teacher's unsafe.Pointer-based cursor, this keeps a plain string plus an
// index — the zero-copy trick it replaces is a performance optimization
// orthogonal to parser behavior (see DESIGN.md).
type Source struct {
	src string
	pos ast.Idx
}

func NewSource(src string) Source {
	return Source{src: src, pos: 0}
}

func (s *Source) EOF() bool {
	return int(s.pos) >= len(s.src)
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) EndOffset() ast.Idx {
	return ast.Idx(len(s.src))
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = pos
}

func (s *Source) ReadPosition(pos ast.Idx) byte {
	return s.src[pos]
}

func (s *Source) NextRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.src[s.pos]
	if b < utf8.RuneSelf {
		s.pos++
		return rune(b), true
	}
	chr, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += ast.Idx(size)
	return chr, true
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.src[s.pos]
	if b < utf8.RuneSelf {
		return rune(b), true
	}
	chr, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return chr, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.NextByteUnchecked(), true
}

func (s *Source) NextByteUnchecked() byte {
	b := s.src[s.pos]
	s.pos++
	return b
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.PeekByteUnchecked(), true
}

func (s *Source) PeekByteUnchecked() byte {
	return s.src[s.pos]
}

func (s *Source) PeekTwoBytes() ([2]byte, bool) {
	if int(s.pos)+2 <= len(s.src) {
		return [2]byte{s.src[s.pos], s.src[s.pos+1]}, true
	}
	return [2]byte{}, false
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if v, ok := s.PeekByte(); ok && v == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.src[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.src[from:to]
}
