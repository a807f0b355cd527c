// Command minic is the driver for the compiler: it preprocesses a source
// file with an external C compiler, runs it through the lex/parse/lower/
// codegen pipeline, and optionally assembles and links the result.
//
// Grounded on the teacher's flag-driven main.go (New/SetDebug/Compile,
// then shelling out to gcc), generalized to a github.com/spf13/cobra
// command so the four early-stop flags are named and self-documenting.
// When more than one is given, the first in --lex, --parse, --tacky,
// --codegen order wins.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Moe-/c-compiler/cerrors"
	"github.com/Moe-/c-compiler/cfg"
	"github.com/Moe-/c-compiler/clog"
	"github.com/Moe-/c-compiler/compiler"
	"github.com/spf13/cobra"
)

var (
	flagLex     bool
	flagParse   bool
	flagTacky   bool
	flagCodegen bool
	flagKeepAsm bool
	flagDebug   bool
	flagCCPath  string
	flagCfgPath string
)

func main() {
	root := &cobra.Command{
		Use:   "minic FILE.c",
		Short: "Compile a restricted subset of C to x86-64 assembly",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	root.Flags().BoolVar(&flagLex, "lex", false, "stop after lexing, reporting any lexer error")
	root.Flags().BoolVar(&flagParse, "parse", false, "stop after parsing, reporting any parser error")
	root.Flags().BoolVar(&flagTacky, "tacky", false, "stop after generating the intermediate representation")
	root.Flags().BoolVar(&flagCodegen, "codegen", false, "stop after assembly generation, before emitting")
	root.Flags().BoolVarP(&flagKeepAsm, "keep-asm", "S", false, "keep the generated .s file instead of deleting it")
	root.Flags().BoolVarP(&flagDebug, "debug", "D", false, "log stage-transition diagnostics to stderr")
	root.Flags().StringVar(&flagCCPath, "cc-path", "", "external compiler driver used for preprocessing and linking (overrides config)")
	root.Flags().StringVar(&flagCfgPath, "config", ".minic.toml", "path to an optional TOML configuration file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	input := args[0]

	settings, err := cfg.Load(flagCfgPath)
	if err != nil {
		return err
	}
	if flagCCPath != "" {
		settings.CCPath = flagCCPath
	}
	if flagKeepAsm {
		settings.KeepAssembly = true
	}
	if flagDebug {
		settings.Debug = true
	}

	log := clog.Default(settings.Debug)

	base := strings.TrimSuffix(input, filepath.Ext(input))
	preprocessed := base + ".i"
	assembly := base + ".s"

	if err := preprocess(settings.CCPath, input, preprocessed); err != nil {
		log.Error("preprocessing %s: %s", input, err)
		return err
	}
	defer os.Remove(preprocessed)

	src, err := os.ReadFile(preprocessed)
	if err != nil {
		return err
	}

	c := compiler.New(string(src))
	c.SetLogger(log)
	if settings.Debug {
		c.SetDebug(true)
	}
	stage := stopStage()
	if stage == compiler.StopNever {
		switch settings.StopAfter {
		case "lex":
			stage = compiler.StopAfterLex
		case "parse":
			stage = compiler.StopAfterParse
		case "tacky":
			stage = compiler.StopAfterTacky
		case "codegen":
			stage = compiler.StopAfterCodegen
		}
	}
	c.SetStopAfter(stage)

	res, err := c.Compile()
	if err != nil {
		log.Error("%s: %s (%s)", input, err, cerrors.KindOf(err))
		return err
	}

	if stage != compiler.StopNever {
		return nil
	}

	if err := os.WriteFile(assembly, []byte(res.Output), 0o644); err != nil {
		return err
	}
	if !settings.KeepAssembly {
		defer os.Remove(assembly)
	}

	return link(settings.CCPath, assembly, base)
}

func stopStage() compiler.Stage {
	switch {
	case flagLex:
		return compiler.StopAfterLex
	case flagParse:
		return compiler.StopAfterParse
	case flagTacky:
		return compiler.StopAfterTacky
	case flagCodegen:
		return compiler.StopAfterCodegen
	default:
		return compiler.StopNever
	}
}

// preprocess runs "cc -E -P input.c -o input.i", stripping comments and
// expanding macros/includes before the lexer ever sees the source.
func preprocess(ccPath, input, output string) error {
	cmd := exec.Command(ccPath, "-E", "-P", input, "-o", output)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// link assembles and links the generated assembly into an executable
// named after the source file's base name.
func link(ccPath, assembly, outBase string) error {
	cmd := exec.Command(ccPath, assembly, "-o", outBase)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("linking %s: %w", assembly, err)
	}
	return nil
}
