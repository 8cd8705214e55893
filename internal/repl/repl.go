package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
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
)

var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

// Repl is the interactive loop. One expression per line; the command
// prefixes expose the other pipeline stages.
type Repl struct {
	Version string
}

func New(version string) *Repl {
	return &Repl{Version: version}
}

func (r *Repl) Start() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      config.ReplPrompt,
		HistoryFile: filepath.Join(os.TempDir(), config.ReplHistory),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	greenColor.Printf("minml %s\n", r.Version)
	cyanColor.Println("type an expression, or :ast :free :types :asm <expr>, :quit to leave")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return nil
		}
		r.handle(line)
	}
}

func (r *Repl) handle(line string) {
	cmd, rest := "", line
	if strings.HasPrefix(line, ":") {
		parts := strings.SplitN(line, " ", 2)
		cmd = parts[0]
		if len(parts) == 2 {
			rest = parts[1]
		} else {
			rest = ""
		}
	}
	if rest == "" {
		redColor.Println("nothing to do")
		return
	}

	switch cmd {
	case "":
		r.eval(rest)
	case ":ast":
		r.withParsed(rest, func(ctx *pipeline.PipelineContext) {
			printer := prettyprinter.NewTreePrinter()
			ctx.AstRoot.Accept(printer)
			fmt.Print(printer.String())
		})
	case ":free":
		r.withParsed(rest, func(ctx *pipeline.PipelineContext) {
			free := analyzer.FreeVars(ctx.AstRoot, nil)
			if len(free) == 0 {
				cyanColor.Println("no free variables")
				return
			}
			yellowColor.Println(strings.Join(free, " "))
		})
	case ":types":
		r.run(rest, func(ctx *pipeline.PipelineContext) {
			for _, c := range ctx.Constraints {
				fmt.Println(c)
			}
			for handle, class := range ctx.Types.Sets() {
				yellowColor.Printf("%s ~ {%s}\n", handle, strings.Join(class, ", "))
			}
		}, &analyzer.TypesProcessor{})
	case ":asm":
		r.run(rest, func(ctx *pipeline.PipelineContext) {
			fmt.Print(ctx.Program.String())
			machine := asm.NewMachine()
			if err := machine.Run(ctx.Program); err != nil {
				redColor.Println(err)
				return
			}
			yellowColor.Printf("%s = %d\n", ctx.ResultRegister, machine.Get(ctx.ResultRegister))
		}, &analyzer.RenameProcessor{}, &codegen.CodegenProcessor{})
	default:
		redColor.Printf("unknown command: %s\n", cmd)
	}
}

func (r *Repl) eval(src string) {
	r.run(src, func(ctx *pipeline.PipelineContext) {
		yellowColor.Println(ctx.Result.Inspect())
	}, &evaluator.EvaluatorProcessor{})
}

func (r *Repl) withParsed(src string, show func(ctx *pipeline.PipelineContext)) {
	r.run(src, show)
}

// run pushes a line through lexer and parser, then the extra stages, and
// hands the context to show unless a stage failed.
func (r *Repl) run(src string, show func(ctx *pipeline.PipelineContext), extra ...pipeline.Processor) {
	procs := append([]pipeline.Processor{
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	}, extra...)

	ctx := pipeline.New(procs...).Run(pipeline.NewPipelineContext(src))
	if ctx.Failed() {
		for _, err := range ctx.Errors {
			redColor.Println(err)
		}
		return
	}
	show(ctx)
}
