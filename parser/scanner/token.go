package scanner

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// Token is the scanner's output: a token kind plus the half-open byte
// range it spans in the source, with two sticky bits the parser consults
// on almost every production (ASI, escaped-keyword rejection).
type Token struct {
	Kind token.Token

	OnNewLine      bool
	HasEscape      bool
	HasOctalEscape bool

	Idx0, Idx1 ast.Idx
}

// String returns the token's logical text: escape-processed for an
// escaped identifier/keyword, delimiter-stripped for strings, private
// identifiers, and template fragments.
func (t Token) String(s *Scanner) string {
	if t.HasEscape {
		return s.EscapedStr
	}
	raw := s.src.Slice(t.Idx0, t.Idx1)
	switch t.Kind {
	case token.String:
		return raw[1 : len(raw)-1]
	case token.PrivateIdentifier:
		return raw[1:]
	case token.NoSubstitutionTemplate, token.TemplateTail:
		return raw[1 : len(raw)-1]
	case token.TemplateHead, token.TemplateMiddle:
		return raw[1 : len(raw)-2]
	}
	return raw
}

// Raw returns the token's exact source text, delimiters included.
func (t Token) Raw(s *Scanner) string {
	return s.src.Slice(t.Idx0, t.Idx1)
}

// TemplateLiteral returns a template fragment's raw text with the
// delimiters (backtick / `${` / `}`) stripped but escapes unprocessed.
func (t Token) TemplateLiteral(s *Scanner) string {
	raw := s.src.Slice(t.Idx0, t.Idx1)
	switch t.Kind {
	case token.NoSubstitutionTemplate, token.TemplateTail:
		return raw[1 : len(raw)-1]
	case token.TemplateHead, token.TemplateMiddle:
		return raw[1 : len(raw)-2]
	}
	return raw
}

// TemplateParsed returns the cooked (escape-processed) value of a template
// fragment.
func (t Token) TemplateParsed(s *Scanner) string {
	if t.HasEscape {
		return s.EscapedStr
	}
	return t.TemplateLiteral(s)
}
