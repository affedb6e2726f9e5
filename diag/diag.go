// Package diag formats and accumulates compiler diagnostics. Recoverable
// diagnostics are data appended to a Bag; fatal lexer/allocation conditions
// are a distinct Error type satisfying the standard errors.Is/Unwrap
// machinery. Error reporting is data, not control flow: a full analysis run
// collects every recoverable finding in a Bag instead of stopping at the
// first one.
package diag

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/google/uuid"

	"github.com/dekarrin/spacelang/token"
)

// maxExcerptWidth is the column width a source excerpt is wrapped to before
// the caret line is computed, so a long line doesn't make the caret
// position meaningless on a narrow terminal.
const maxExcerptWidth = 96

// Diagnostic is one recoverable finding: a category, a message, and the
// source position of the offending token.
type Diagnostic struct {
	Category   Category
	Message    string
	Line       int
	Column     int
	TokenText  string
	SourceLine string
}

// FullMessage renders the diagnostic for display: the category, the
// message, the source line containing the token, and a caret underline of
// length equal to the token text anchored at the token's column.
func (d Diagnostic) FullMessage() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", d.Category, d.Message)
	if d.Line > 0 {
		fmt.Fprintf(&sb, " (line %d, column %d)", d.Line, d.Column)
	}
	if excerpt := d.sourceExcerpt(); excerpt != "" {
		sb.WriteString("\n")
		sb.WriteString(excerpt)
	}
	return sb.String()
}

func (d Diagnostic) sourceExcerpt() string {
	if d.SourceLine == "" {
		return ""
	}

	line := d.SourceLine
	col := d.Column
	if len(line) > maxExcerptWidth {
		wrapped := rosed.Edit(line).Wrap(maxExcerptWidth).String()
		// wrapping may have split the line before the column we need to
		// underline; only the first wrapped segment can be reliably
		// annotated, so fall back to it.
		line = strings.SplitN(wrapped, "\n", 2)[0]
	}

	caretLen := len(d.TokenText)
	if caretLen < 1 {
		caretLen = 1
	}

	pad := col - 1
	if pad < 0 {
		pad = 0
	}
	if pad > len(line) {
		pad = len(line)
	}

	caret := strings.Repeat(" ", pad) + strings.Repeat("^", caretLen)
	return line + "\n" + caret
}

// Bag is an ordered, append-only collection of diagnostics produced over
// the course of one Compile() call, stamped with a batch ID so multiple
// compiles within one long-lived REPL process (cmd/spacelangc) can be told
// apart in logs.
type Bag struct {
	BatchID     uuid.UUID
	Diagnostics []Diagnostic
}

// NewBag creates an empty Bag with a fresh batch ID.
func NewBag() *Bag {
	return &Bag{BatchID: uuid.New()}
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.Diagnostics = append(b.Diagnostics, d)
}

// Empty returns whether no diagnostics have been recorded.
func (b *Bag) Empty() bool {
	return len(b.Diagnostics) == 0
}

// Of constructs a Diagnostic from a token and a formatted message.
func Of(cat Category, tok token.Token, format string, args ...any) Diagnostic {
	return Diagnostic{
		Category:  cat,
		Message:   fmt.Sprintf(format, args...),
		Line:      tok.Line,
		Column:    tok.Column,
		TokenText: tok.Text,
	}
}

// WithSourceLine returns a copy of d with its source excerpt set, for
// callers (package sema) that have the full line text available from the
// lexer's bookkeeping but not at the point the Diagnostic was first built.
func (d Diagnostic) WithSourceLine(line string) Diagnostic {
	d.SourceLine = line
	return d
}

// Error is a fatal condition (UnterminatedString, UnterminatedComment,
// UnknownCharacter, AllocationFailure). It supports errors.Is/Unwrap against
// any of its causes, mirroring the teacher's server/serr.Error.
type Error struct {
	Category Category
	Line     int
	Column   int
	msg      string
	cause    error
}

// NewError builds a fatal Error with no further cause.
func NewError(cat Category, line, column int, msg string) Error {
	return Error{Category: cat, Line: line, Column: column, msg: msg}
}

// WrapError builds a fatal Error that wraps another error as its cause.
func WrapError(cat Category, line, column int, msg string, cause error) Error {
	return Error{Category: cat, Line: line, Column: column, msg: msg, cause: cause}
}

func (e Error) Error() string {
	base := fmt.Sprintf("%s: %s", e.Category, e.msg)
	if e.Line > 0 {
		base = fmt.Sprintf("%s (line %d, column %d)", base, e.Line, e.Column)
	}
	if e.cause != nil {
		return base + ": " + e.cause.Error()
	}
	return base
}

// Unwrap exposes the wrapped cause, if any, to the errors package.
func (e Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an Error with the same Category, satisfying
// errors.Is(err, diag.NewError(diag.UnterminatedString, 0, 0, "")).
func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	if !ok {
		return false
	}
	return e.Category == other.Category
}
