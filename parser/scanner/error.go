package scanner

import (
	"fmt"

	"github.com/wilt-23/cherow/ast"
)

// Error is a lexical-layer failure. The parser wraps it into a typed
// parser.SyntaxError with an ErrorCode before surfacing it to the caller;
// the scanner itself stays error-code-agnostic so it can be exercised
// without pulling in the parser's error enumeration.
type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (e Error) Error() string { return e.Message }

func invalidCharacter(c rune, start, end ast.Idx) Error {
	return Error{Message: fmt.Sprintf("Invalid character `%c`", c), Start: start, End: end}
}

func unexpectedEnd(offset ast.Idx) Error {
	return Error{Message: "Unexpected end of input", Start: offset, End: offset}
}

func unterminatedString(start, end ast.Idx) Error {
	return Error{Message: "Unterminated string literal", Start: start, End: end}
}

func unterminatedTemplateLiteral(start, end ast.Idx) Error {
	return Error{Message: "Unterminated template literal", Start: start, End: end}
}

func unterminatedMultiLineComment(start, end ast.Idx) Error {
	return Error{Message: "Unterminated multi-line comment", Start: start, End: end}
}

func unterminatedRegExp(start, end ast.Idx) Error {
	return Error{Message: "Unterminated regular expression", Start: start, End: end}
}

func invalidEscapeSequence(start, end ast.Idx) Error {
	return Error{Message: "Invalid escape sequence", Start: start, End: end}
}

func invalidNumberEnd(start, end ast.Idx) Error {
	return Error{Message: "Invalid characters after number", Start: start, End: end}
}

func invalidUnicodeEscapeSequence(start, end ast.Idx) Error {
	return Error{Message: "Invalid Unicode escape sequence", Start: start, End: end}
}

func invalidEscapedReservedWord(start, end ast.Idx) Error {
	return Error{Message: "Keyword must not contain escaped characters", Start: start, End: end}
}

func regExpFlag(c byte, start, end ast.Idx) Error {
	return Error{Message: fmt.Sprintf("Invalid regular expression flag `%c`", c), Start: start, End: end}
}

func regExpFlagTwice(c byte, start, end ast.Idx) Error {
	return Error{Message: fmt.Sprintf("Duplicate regular expression flag `%c`", c), Start: start, End: end}
}

func strictOctalLiteral(start, end ast.Idx) Error {
	return Error{Message: "Octal literals are not allowed in strict mode", Start: start, End: end}
}

func strictOctalEscape(start, end ast.Idx) Error {
	return Error{Message: "Octal escape sequences are not allowed in strict mode", Start: start, End: end}
}
