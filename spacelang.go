// Package spacelang ties the lexer, parser, and semantic analyzer together
// into a single compile pipeline, the same way the teacher's engine.go
// wires its own stages (world loading, then game state) behind one
// constructor and one driving call.
package spacelang

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/internal/config"
	"github.com/dekarrin/spacelang/lexer"
	"github.com/dekarrin/spacelang/parser"
	"github.com/dekarrin/spacelang/sema"
	"github.com/dekarrin/spacelang/symbols"
	"github.com/dekarrin/spacelang/token"
)

// Context holds everything produced by one source file's trip through the
// pipeline: the token stream, the parse tree, the populated symbol forest,
// the external-access accumulator, and the diagnostics collected along the
// way. Each Compile call stamps its Context with a fresh batch ID;
// cmd/spacelangc does not print it.
type Context struct {
	BatchID     uuid.UUID
	Source      string
	Tokens      []token.Token
	Tree        *ast.ParseNode
	Main        *symbols.SymbolTable
	Diagnostics *diag.Bag
	External    []*ast.ParseNode
}

// Compile runs the full pipeline over src: lex, parse, then analyze. A
// fatal lexer error (an unterminated or over-long quoted literal or block
// comment, or an unrecognized character)
// stops the pipeline immediately and is returned as a Go error, since there
// is no sensible token stream to hand the parser. Parser errors are
// likewise fatal, since a malformed tree cannot be safely walked by the
// analyzer. Everything the analyzer itself finds is recoverable and comes
// back inside the returned Context's Diagnostics bag, never as the error
// return.
func Compile(src string, cfg config.Config) (Context, error) {
	ctx := Context{BatchID: uuid.New(), Source: src}

	tokens, err := lexer.Lex(src, cfg.MaxTokenLength)
	if err != nil {
		return ctx, err
	}
	ctx.Tokens = tokens

	tree, err := parser.Parse(tokens)
	if err != nil {
		return ctx, err
	}
	ctx.Tree = tree

	result := sema.New(cfg.StrictByDefault).Analyze(tree)
	ctx.Main = result.Main
	ctx.Diagnostics = result.Diagnostics
	ctx.External = result.ExternalAccesses

	attachSourceLines(ctx.Diagnostics, src)

	return ctx, nil
}

// attachSourceLines fills in each diagnostic's SourceLine from src, so
// Diagnostic.FullMessage can render a caret excerpt without sema having had
// to carry source text through the tree walk itself.
func attachSourceLines(bag *diag.Bag, src string) {
	if bag == nil || bag.Empty() {
		return
	}

	lines := strings.Split(src, "\n")
	for i, d := range bag.Diagnostics {
		if d.Line < 1 || d.Line > len(lines) {
			continue
		}
		bag.Diagnostics[i] = d.WithSourceLine(lines[d.Line-1])
	}
}

// HasErrors reports whether the compile collected any recoverable
// diagnostic at all. A caller that wants a simple pass/fail result without
// inspecting individual diagnostics can use this instead of checking
// Diagnostics.Empty() directly.
func (c Context) HasErrors() bool {
	return c.Diagnostics != nil && !c.Diagnostics.Empty()
}
