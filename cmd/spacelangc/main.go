/*
Spacelangc compiles a Space source file through the lexer, parse-tree
builder, and semantic analyzer, and reports every diagnostic collected
along the way.

Usage:

	spacelangc [flags] [file]

The flags are:

	-v, --version
		Give the current version of spacelangc and then exit.

	-c, --config FILE
		Load compiler settings from the given TOML config file. Defaults to
		the built-in defaults if not given.

	-s, --strict
		Use strict type equality (no Double/Float interchange, no Custom
		wildcard, no Null leniency) as the default comparison mode,
		overriding the config file's setting.

	--no-color
		Disable ANSI-colored diagnostic output, overriding the config file's
		setting.

If file is omitted, spacelangc starts an interactive REPL: each line is
compiled in isolation and its diagnostics are printed immediately. Within
the REPL, a line beginning with ":" is a directive rather than source,
split the same way a shell would split an argument list. The directives
are:

	:set strict on|off
		Change the strict/lenient default for the rest of the session.

	:quit
		Exit the REPL.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"

	"github.com/dekarrin/spacelang"
	"github.com/dekarrin/spacelang/internal/config"
	"github.com/dekarrin/spacelang/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue loading config or the source file.
	ExitInitError

	// ExitCompileError indicates the compiled file had at least one
	// recoverable diagnostic.
	ExitCompileError
)

var (
	returnCode  int
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagConfig  = pflag.StringP("config", "c", "", "Load compiler settings from the given TOML file")
	flagStrict  = pflag.BoolP("strict", "s", false, "Use strict type equality as the default")
	flagNoColor = pflag.Bool("no-color", false, "Disable ANSI-colored diagnostic output")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := config.Default()
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		cfg = loaded
	}
	if *flagStrict {
		cfg.StrictByDefault = true
	}
	if *flagNoColor {
		cfg.Color = false
	}

	if pflag.NArg() > 0 {
		runFile(cfg, pflag.Arg(0))
		return
	}

	runREPL(cfg)
}

// runFile compiles one file and prints its diagnostics to stdout.
func runFile(cfg config.Config, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	ctx, err := spacelang.Compile(string(src), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	printDiagnostics(ctx, cfg)
	if ctx.HasErrors() {
		returnCode = ExitCompileError
	}
}

// runREPL starts an interactive session, compiling one line at a time
// until ":quit" is given or input ends.
func runREPL(cfg config.Config) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "space> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not start readline: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if !runDirective(&cfg, line[1:]) {
				return
			}
			continue
		}

		ctx, err := spacelang.Compile(line, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			continue
		}
		printDiagnostics(ctx, cfg)
	}
}

// runDirective handles one ":"-prefixed REPL command, split with shell
// word-splitting rules. It returns false when the session should end.
func runDirective(cfg *config.Config, line string) bool {
	words, err := shellquote.Split(line)
	if err != nil || len(words) == 0 {
		fmt.Fprintf(os.Stderr, "ERROR: could not parse directive: %v\n", err)
		return true
	}

	switch words[0] {
	case "quit", "exit":
		return false
	case "set":
		if len(words) == 3 && words[1] == "strict" {
			cfg.StrictByDefault = words[2] == "on"
			return true
		}
		fmt.Fprintln(os.Stderr, "ERROR: usage: :set strict on|off")
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown directive %q\n", words[0])
	}
	return true
}

// printDiagnostics prints every diagnostic a Compile call collected, one
// per line, followed by a summary count.
func printDiagnostics(ctx spacelang.Context, cfg config.Config) {
	if ctx.Diagnostics == nil || len(ctx.Diagnostics.Diagnostics) == 0 {
		fmt.Println("OK: no diagnostics")
		return
	}

	for _, d := range ctx.Diagnostics.Diagnostics {
		msg := d.FullMessage()
		if cfg.Color {
			msg = "\033[31m" + msg + "\033[0m"
		}
		fmt.Println(msg)
	}
	fmt.Printf("%d diagnostic(s)\n", len(ctx.Diagnostics.Diagnostics))
}
