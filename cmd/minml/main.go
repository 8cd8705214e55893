package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/funvibe/minml/internal/analyzer"
	"github.com/funvibe/minml/internal/asm"
	"github.com/funvibe/minml/internal/codegen"
	"github.com/funvibe/minml/internal/config"
	"github.com/funvibe/minml/internal/evaluator"
	"github.com/funvibe/minml/internal/lexer"
	"github.com/funvibe/minml/internal/parser"
	"github.com/funvibe/minml/internal/pipeline"
	"github.com/funvibe/minml/internal/prettyprinter"
	"github.com/funvibe/minml/internal/repl"
	"github.com/funvibe/minml/internal/store"
	"github.com/funvibe/minml/internal/token"
)

const version = "0.3.0"

var (
	exprFlag   = flag.String("e", "", "evaluate the given expression instead of a file")
	showTokens = flag.Bool("tokens", false, "print the filtered token stream")
	showAst    = flag.Bool("ast", false, "print the AST")
	showFree   = flag.Bool("free", false, "print the free variables")
	showRename = flag.Bool("rename", false, "print the program after renaming")
	showTypes  = flag.Bool("types", false, "print type constraints and equivalence classes")
	showAsm    = flag.Bool("asm", false, "print the generated three-address code")
	runAsm     = flag.Bool("run-asm", false, "execute the generated code on the reference machine")
	saveFlag   = flag.Bool("save", false, "save the generated code to the program store")
	dbPath     = flag.String("db", "minml.db", "program store path used by -save")
	noEval     = flag.Bool("no-eval", false, "skip evaluation")
)

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func main() {
	flag.Parse()

	source, path, ok := readSource()
	if !ok {
		if err := repl.New(version).Start(); err != nil {
			fmt.Fprintf(os.Stderr, "repl: %s\n", err)
			os.Exit(1)
		}
		return
	}

	os.Exit(run(source, path))
}

func readSource() (source, path string, ok bool) {
	if *exprFlag != "" {
		return *exprFlag, "<arg>", true
	}
	if flag.NArg() == 0 {
		return "", "", false
	}
	path = flag.Arg(0)
	if !isSourceFile(path) {
		fmt.Fprintf(os.Stderr, "warning: %s has no recognized source extension\n", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %s\n", path, err)
		os.Exit(1)
	}
	return string(data), path, true
}

func run(source, path string) int {
	if *showTokens {
		printTokens(source)
	}

	needsCode := *showAsm || *runAsm || *saveFlag
	procs := []pipeline.Processor{
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	}
	if *showFree {
		procs = append(procs, &analyzer.UseDefProcessor{})
	}
	if *showTypes {
		procs = append(procs, &analyzer.TypesProcessor{})
	}
	if !*noEval {
		procs = append(procs, &evaluator.EvaluatorProcessor{})
	}
	if *showRename || needsCode {
		procs = append(procs, &analyzer.RenameProcessor{})
	}
	if needsCode {
		procs = append(procs, &codegen.CodegenProcessor{})
	}

	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	ctx = pipeline.New(procs...).Run(ctx)

	if ctx.Failed() {
		for _, err := range ctx.Errors {
			color.New(color.FgRed).Fprintln(os.Stderr, err)
		}
		return 1
	}

	if *showAst {
		printer := prettyprinter.NewTreePrinter()
		ctx.AstRoot.Accept(printer)
		fmt.Print(printer.String())
	}
	if *showFree {
		fmt.Printf("free: %s\n", strings.Join(ctx.FreeVars, " "))
	}
	if *showTypes {
		for _, c := range ctx.Constraints {
			fmt.Println(c)
		}
		for handle, class := range ctx.Types.Sets() {
			fmt.Printf("%s ~ {%s}\n", handle, strings.Join(class, ", "))
		}
	}
	if *showRename {
		printer := prettyprinter.NewCodePrinter()
		ctx.AstRoot.Accept(printer)
		fmt.Println(printer.String())
	}
	if *showAsm {
		fmt.Print(ctx.Program.String())
	}
	if *runAsm {
		machine := asm.NewMachine()
		if err := machine.Run(ctx.Program); err != nil {
			fmt.Fprintf(os.Stderr, "machine: %s\n", err)
			return 1
		}
		fmt.Printf("%s = %d\n", ctx.ResultRegister, machine.Get(ctx.ResultRegister))
	}
	if *saveFlag {
		if err := saveProgram(ctx, source); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s\n", err)
			return 1
		}
		fmt.Printf("saved %s\n", ctx.Program.ID)
	}
	if !*noEval && ctx.Result != nil {
		fmt.Println(ctx.Result.Inspect())
	}
	return 0
}

func printTokens(source string) {
	stream := lexer.NewTokenStream(lexer.New(source))
	for {
		tok := stream.Next()
		fmt.Println(tok)
		if tok.Type == token.EOF {
			return
		}
	}
}

func saveProgram(ctx *pipeline.PipelineContext, source string) error {
	st, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Save(ctx.Program, source, ctx.ResultRegister)
}
