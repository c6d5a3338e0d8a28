// Command ninecc compiles a single expression-language source
// program, given as its one positional argument, to x86-64 assembly,
// optionally assembling and running it via cc.
//
// Grounded on the teacher's original main.go flag-driven driver, which
// took the program the same way (flag.Args()[0]), with the flag
// parsing replaced by github.com/spf13/cobra per keurnel-assembler, a
// cobra-based x86_64 assembler CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ysakasin/ninecc/compiler"
	"github.com/ysakasin/ninecc/internal/config"
	"github.com/ysakasin/ninecc/internal/toolchain"
)

var (
	debug      bool
	doCompile  bool
	doRun      bool
	outPath    string
	configPath string
)

func main() {
	root := &cobra.Command{
		Use:   "ninecc 'program'",
		Short: "Compile a tiny expression language to x86-64 assembly",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errWrongArgCount
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	root.Flags().BoolVarP(&debug, "debug", "d", false, "insert a debug banner in the generated output")
	root.Flags().BoolVarP(&doCompile, "compile", "c", false, "assemble the program via cc")
	root.Flags().BoolVarP(&doRun, "run", "r", false, "run the binary, implies --compile")
	root.Flags().StringVarP(&outPath, "out", "o", "a.out", "path of the assembled binary")
	root.Flags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	if err := root.Execute(); err != nil {
		if errors.Is(err, errWrongArgCount) {
			fmt.Fprintln(os.Stderr, "引数の個数が正しくありません")
		} else {
			fmt.Fprintf(os.Stderr, "Error compiling: %s\n", err)
		}
		os.Exit(1)
	}
}

var errWrongArgCount = errors.New("wrong number of arguments")

func run(cmd *cobra.Command, args []string) error {
	if doRun {
		doCompile = true
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	opts := cfg.Options()
	if debug {
		opts = append(opts, compiler.WithDebug(true))
	}

	comp := compiler.New(args[0], opts...)
	asm, err := comp.Compile()
	if err != nil {
		return err
	}

	if !doCompile {
		fmt.Fprint(os.Stdout, asm)
		return nil
	}

	if !doRun {
		return toolchain.Assemble(asm, outPath)
	}

	status, err := toolchain.AssembleAndRun(asm, outPath)
	if err != nil {
		return err
	}
	os.Exit(status)
	return nil
}
