package asm

import (
	"errors"
	"fmt"

	"github.com/pbaxter/sixasm/internal/source"
)

// SourceInfo annotates an error with the source position and rendered excerpt it occurred at,
// following the original parser's get_token_error_info rendering.
type SourceInfo struct {
	Pos     source.Pos
	Excerpt string
}

func (si SourceInfo) String() string {
	if si.Excerpt == "" {
		return si.Pos.String()
	}

	return fmt.Sprintf("%s\n%s", si.Pos, si.Excerpt)
}

// LexicalError reports a token the lexer could not classify.
type LexicalError struct {
	SourceInfo
	Text string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: lexical error: unrecognized input %q", e.Pos, e.Text)
}

func (e *LexicalError) Is(target error) bool { _, ok := target.(*LexicalError); return ok }

// SyntaxError reports a token sequence that matched no grammar production.
type SyntaxError struct {
	SourceInfo
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: expected %s, got %q", e.Pos, e.Expected, e.Got)
}

func (e *SyntaxError) Is(target error) bool { _, ok := target.(*SyntaxError); return ok }

// UnknownOpcodeError reports a mnemonic with no entry in the opcode table (or disabled by flags).
type UnknownOpcodeError struct {
	SourceInfo
	Mnemonic string
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("%s: unknown opcode %q", e.Pos, e.Mnemonic)
}

func (e *UnknownOpcodeError) Is(target error) bool { _, ok := target.(*UnknownOpcodeError); return ok }

// UnsupportedModeError reports an addressing mode the opcode's table has no encoding for.
type UnsupportedModeError struct {
	SourceInfo
	Mnemonic string
	Mode     string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("%s: opcode %q does not support addressing mode %s", e.Pos, e.Mnemonic, e.Mode)
}

func (e *UnsupportedModeError) Is(target error) bool {
	_, ok := target.(*UnsupportedModeError)
	return ok
}

// OperandRangeError reports an operand value too large/small for the selected addressing mode.
// Raised only once the resolver has stopped changing (the "confirming" pass), since an operand
// computed from a forward reference may still shrink into range on a later pass.
type OperandRangeError struct {
	SourceInfo
	Mnemonic string
	Value    int
}

func (e *OperandRangeError) Error() string {
	return fmt.Sprintf("%s: opcode %q operand out of range (%d)", e.Pos, e.Mnemonic, e.Value)
}

func (e *OperandRangeError) Is(target error) bool { _, ok := target.(*OperandRangeError); return ok }

// DuplicateDefinitionError reports a label defined twice with different values.
type DuplicateDefinitionError struct {
	SourceInfo
	Symbol   string
	First    source.Pos
	OldValue int
	NewValue int
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%s: symbol %q already defined at %s with a different value (%d != %d)",
		e.Pos, e.Symbol, e.First, e.OldValue, e.NewValue)
}

func (e *DuplicateDefinitionError) Is(target error) bool {
	_, ok := target.(*DuplicateDefinitionError)
	return ok
}

// UnresolvedSymbolError reports a global symbol referenced but never defined by end of assembly.
type UnresolvedSymbolError struct {
	SourceInfo
	Symbol string
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("%s: unresolved symbol %q", e.Pos, e.Symbol)
}

func (e *UnresolvedSymbolError) Is(target error) bool {
	_, ok := target.(*UnresolvedSymbolError)
	return ok
}

// UnresolvedLocalError reports a local symbol still referenced when its scope closed (a new
// global label began, or the program ended) without ever being defined.
type UnresolvedLocalError struct {
	SourceInfo
	Symbol string
	Scope  string
}

func (e *UnresolvedLocalError) Error() string {
	return fmt.Sprintf("%s: unresolved local symbol %q in scope of %q", e.Pos, e.Symbol, e.Scope)
}

func (e *UnresolvedLocalError) Is(target error) bool {
	_, ok := target.(*UnresolvedLocalError)
	return ok
}

// DivisionByZeroError reports a constant-folded division or modulo by zero.
type DivisionByZeroError struct {
	SourceInfo
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Pos)
}

func (e *DivisionByZeroError) Is(target error) bool { _, ok := target.(*DivisionByZeroError); return ok }

// MacroRecursionError reports a macro whose expansion invokes itself (directly or transitively).
type MacroRecursionError struct {
	SourceInfo
	Macro string
}

func (e *MacroRecursionError) Error() string {
	return fmt.Sprintf("%s: macro %q recurses into itself", e.Pos, e.Macro)
}

func (e *MacroRecursionError) Is(target error) bool { _, ok := target.(*MacroRecursionError); return ok }

// IncludeError reports a failure opening or reading a .include file.
type IncludeError struct {
	SourceInfo
	Path string
	Err  error
}

func (e *IncludeError) Error() string {
	return fmt.Sprintf("%s: cannot include %q: %s", e.Pos, e.Path, e.Err)
}

func (e *IncludeError) Unwrap() error { return e.Err }

func (e *IncludeError) Is(target error) bool { _, ok := target.(*IncludeError); return ok }

// IterationLimitError reports a .do/.while loop that did not terminate within the configured
// iteration cap.
type IterationLimitError struct {
	SourceInfo
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("%s: .do/.while loop exceeded %d iterations", e.Pos, e.Limit)
}

func (e *IterationLimitError) Is(target error) bool { _, ok := target.(*IterationLimitError); return ok }

// ErrorList accumulates errors across a pass and joins them with errors.Join, following the
// teacher's own Err()/errors.Join pattern.
type ErrorList struct {
	errs []error
}

func (l *ErrorList) Add(err error) {
	if err != nil {
		l.errs = append(l.errs, err)
	}
}

func (l *ErrorList) Len() int { return len(l.errs) }

func (l *ErrorList) Err() error {
	return errors.Join(l.errs...)
}
