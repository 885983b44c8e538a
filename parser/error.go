package parser

import (
	"fmt"
	"strings"

	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/parser/scanner"
	"github.com/wilt-23/cherow/token"
)

// ErrorCode is a fixed enumeration of every syntax error this parser can
// raise. Unlike the teacher's free-form errorf, callers that need to
// react to a specific failure (an editor doing incremental reparse, a
// linter distinguishing a strict-mode violation from a real syntax
// error) can switch on the code instead of matching error text.
type ErrorCode int

const (
	ErrUnexpectedToken ErrorCode = iota
	ErrUnexpectedEOF
	ErrUnexpectedReservedWord
	ErrInvalidEscapedReservedWord
	ErrIllegalCharacter

	ErrInvalidRegExpFlags
	ErrDuplicateRegExpFlag
	ErrUnterminatedString
	ErrUnterminatedTemplate
	ErrUnterminatedComment
	ErrUnterminatedRegExp
	ErrInvalidNumericLiteral
	ErrInvalidEscapeSequence

	ErrStrictModeOctalLiteral
	ErrStrictModeOctalEscape
	ErrStrictModeWith
	ErrStrictModeReservedWord
	ErrStrictModeAssignEval
	ErrStrictModeDeleteUnqualified
	ErrStrictModeDuplicateParam
	ErrStrictModeFunctionInBlock
	ErrStrictModeOctalNumericLiteral
	ErrStrictModeNonSimpleParams

	ErrIllegalReturn
	ErrIllegalBreak
	ErrIllegalContinue
	ErrUndefinedLabel
	ErrDuplicateLabel
	ErrNewlineAfterThrow

	ErrInvalidLHSInAssignment
	ErrInvalidLHSInForIn
	ErrInvalidDestructuringTarget
	ErrRestElementNotLast
	ErrRestElementWithDefault
	ErrDuplicateBinding
	ErrLetConstWithoutInit
	ErrConstWithoutInit
	ErrForInOfLoopInit
	ErrForOfMultipleBindings

	ErrDuplicateConstructor
	ErrStaticPrototype
	ErrConstructorGenerator
	ErrConstructorAsync
	ErrPrivateFieldNotDefined
	ErrDuplicatePrivateField

	ErrYieldInParameter
	ErrAwaitInParameter
	ErrGeneratorInSingleStatement
	ErrAwaitOutsideAsync
	ErrYieldOutsideGenerator
	ErrNewTargetOutsideFunction
	ErrSuperOutsideMethod
	ErrSuperCallOutsideConstructor

	ErrImportExportOutsideModule
	ErrDuplicateExport
	ErrImportExportNotTopLevel

	ErrUnterminatedJSXElement
	ErrJSXTagMismatch
	ErrAdjacentJSXWithoutParen

	ErrBadGetterArity
	ErrBadSetterArity
	ErrMultipleDefaultInSwitch

	ErrFeatureNotEnabled
)

var errorCodeMessage = map[ErrorCode]string{
	ErrUnexpectedToken:                "Unexpected token %s",
	ErrUnexpectedEOF:                  "Unexpected end of input",
	ErrUnexpectedReservedWord:         "Unexpected reserved word",
	ErrInvalidEscapedReservedWord:     "Keyword must not contain escaped characters",
	ErrIllegalCharacter:               "Illegal character",
	ErrInvalidRegExpFlags:             "Invalid regular expression flags",
	ErrDuplicateRegExpFlag:            "Duplicate regular expression flag",
	ErrUnterminatedString:             "Unterminated string literal",
	ErrUnterminatedTemplate:           "Unterminated template literal",
	ErrUnterminatedComment:            "Unterminated comment",
	ErrUnterminatedRegExp:             "Unterminated regular expression",
	ErrInvalidNumericLiteral:          "Invalid or unexpected token",
	ErrInvalidEscapeSequence:          "Invalid escape sequence",
	ErrStrictModeOctalLiteral:         "Octal literals are not allowed in strict mode",
	ErrStrictModeOctalEscape:          "Octal escape sequences are not allowed in strict mode",
	ErrStrictModeWith:                 "'with' statements are not allowed in strict mode",
	ErrStrictModeReservedWord:         "Unexpected strict mode reserved word",
	ErrStrictModeAssignEval:           "Assignment to eval or arguments is not allowed in strict mode",
	ErrStrictModeDeleteUnqualified:    "Delete of an unqualified identifier is not allowed in strict mode",
	ErrStrictModeDuplicateParam:       "Duplicate parameter name is not allowed in strict mode",
	ErrStrictModeFunctionInBlock:      "In strict mode code, functions can only be declared at top level or inside a block",
	ErrStrictModeOctalNumericLiteral:  "Octal literals are not allowed in strict mode",
	ErrStrictModeNonSimpleParams:      "Illegal 'use strict' directive in function with non-simple parameter list",
	ErrIllegalReturn:                  "Illegal return statement",
	ErrIllegalBreak:                   "Illegal break statement",
	ErrIllegalContinue:                "Illegal continue statement",
	ErrUndefinedLabel:                 "Undefined label %q",
	ErrDuplicateLabel:                 "Label %q has already been declared",
	ErrNewlineAfterThrow:              "Illegal newline after throw",
	ErrInvalidLHSInAssignment:         "Invalid left-hand side in assignment",
	ErrInvalidLHSInForIn:              "Invalid left-hand side in for-in",
	ErrInvalidDestructuringTarget:     "Invalid destructuring assignment target",
	ErrRestElementNotLast:             "Rest element must be last element",
	ErrRestElementWithDefault:         "Rest elements cannot have a default value",
	ErrDuplicateBinding:               "Identifier %q has already been declared",
	ErrLetConstWithoutInit:            "Missing initializer in destructuring declaration",
	ErrConstWithoutInit:               "Missing initializer in const declaration",
	ErrForInOfLoopInit:                "for-in/of loop variable declaration may not have an initializer",
	ErrForOfMultipleBindings:          "Invalid left-hand side in for-of",
	ErrDuplicateConstructor:           "A class may only have one constructor",
	ErrStaticPrototype:                "Classes may not have a static property named 'prototype'",
	ErrConstructorGenerator:           "Class constructor may not be a generator",
	ErrConstructorAsync:               "Class constructor may not be an async method",
	ErrPrivateFieldNotDefined:         "Private field %q is not defined",
	ErrDuplicatePrivateField:          "Duplicate private field %q",
	ErrYieldInParameter:               "Yield expression not allowed in formal parameter",
	ErrAwaitInParameter:               "Await expression not allowed in formal parameter",
	ErrGeneratorInSingleStatement:     "Generators can only be declared at top level or inside a block",
	ErrAwaitOutsideAsync:              "Await is only valid in async functions",
	ErrYieldOutsideGenerator:          "Yield is only valid in generator functions",
	ErrNewTargetOutsideFunction:       "new.target expression is not allowed here",
	ErrSuperOutsideMethod:             "'super' keyword is only valid inside a class",
	ErrSuperCallOutsideConstructor:    "'super' keyword is only valid inside a class constructor",
	ErrImportExportOutsideModule:      "'import' and 'export' may only appear at the top level of a module",
	ErrDuplicateExport:                "Duplicate export %q",
	ErrImportExportNotTopLevel:        "'import' and 'export' may only appear at the top level",
	ErrUnterminatedJSXElement:         "Unterminated JSX contents",
	ErrJSXTagMismatch:                 "Expected corresponding closing tag for %q",
	ErrAdjacentJSXWithoutParen:        "Adjacent JSX elements must be wrapped in an enclosing tag",
	ErrBadGetterArity:                 "Getter must not have any formal parameters",
	ErrBadSetterArity:                 "Setter must have exactly one formal parameter",
	ErrMultipleDefaultInSwitch:        "More than one default clause in switch statement",
	ErrFeatureNotEnabled:              "%s requires the '%s' option",
}

// SyntaxError is the error type every parse failure surfaces as.
type SyntaxError struct {
	Code ErrorCode
	Msg  string
	Loc  ast.SourceLocation
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Msg, e.Loc.Start.Line, e.Loc.Start.Column)
}

// ErrorList accumulates every syntax error raised during a parse, in the
// order raised. Parsing does not stop at the first error: the parser keeps
// consuming tokens to the end of input, so entries after the first may be
// consequences of it. Scanner errors are recorded here too.
type ErrorList []*SyntaxError

func (list ErrorList) Error() string {
	switch len(list) {
	case 0:
		return "no errors"
	case 1:
		return list[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (and %d more errors)", list[0].Error(), len(list)-1)
	return b.String()
}

func (list ErrorList) Err() error {
	if len(list) == 0 {
		return nil
	}
	return list
}

func (p *parser) errorAt(code ErrorCode, idx ast.Idx, args ...any) {
	msg := errorCodeMessage[code]
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	pos := p.positionOf(idx)
	p.errors = append(p.errors, &SyntaxError{
		Code: code,
		Msg:  msg,
		Loc:  ast.SourceLocation{Start: pos, End: pos},
	})
}

func (p *parser) error(code ErrorCode, args ...any) {
	p.errorAt(code, p.token.Idx0, args...)
}

// errorUnexpectedToken mirrors a real engine's attempt to name the
// offending token rather than just print its kind.
func (p *parser) errorUnexpectedToken() {
	switch p.token.Kind {
	case token.Eof:
		p.error(ErrUnexpectedEOF)
	case token.Identifier:
		p.error(ErrUnexpectedToken, "identifier")
	case token.FutureReservedWord:
		p.error(ErrUnexpectedReservedWord)
	case token.String:
		p.error(ErrUnexpectedToken, "string")
	case token.Number:
		p.error(ErrUnexpectedToken, "number")
	default:
		p.error(ErrUnexpectedToken, p.token.Kind.String())
	}
}

// recordScanError folds a sticky lexical error from the scanner into the
// parser's own error list, with the best-guess ErrorCode for its message.
func (p *parser) recordScanError(err error) {
	se, ok := err.(scanner.Error)
	if !ok {
		return
	}
	code := ErrIllegalCharacter
	switch {
	case strings.Contains(se.Message, "Unterminated string"):
		code = ErrUnterminatedString
	case strings.Contains(se.Message, "Unterminated template"):
		code = ErrUnterminatedTemplate
	case strings.Contains(se.Message, "Unterminated multi-line comment"):
		code = ErrUnterminatedComment
	case strings.Contains(se.Message, "Unterminated regular expression"):
		code = ErrUnterminatedRegExp
	case strings.Contains(se.Message, "escaped characters"):
		code = ErrInvalidEscapedReservedWord
	case strings.Contains(se.Message, "flag"):
		if strings.Contains(se.Message, "Duplicate") {
			code = ErrDuplicateRegExpFlag
		} else {
			code = ErrInvalidRegExpFlags
		}
	case strings.Contains(se.Message, "Octal escape"):
		code = ErrStrictModeOctalEscape
	case strings.Contains(se.Message, "Octal literals"):
		code = ErrStrictModeOctalLiteral
	case strings.Contains(se.Message, "after number"):
		code = ErrInvalidNumericLiteral
	case strings.Contains(se.Message, "escape sequence"):
		code = ErrInvalidEscapeSequence
	}
	p.errorAt(code, se.Start)
}
