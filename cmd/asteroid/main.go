package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asteroid-lang/asteroid-go/internal/config"
	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/internal/fixtures"
	"github.com/asteroid-lang/asteroid-go/internal/tracing"
	"github.com/asteroid-lang/asteroid-go/pkg/call"
	"github.com/asteroid-lang/asteroid-go/pkg/debugger"
	"github.com/asteroid-lang/asteroid-go/pkg/eval"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
	"github.com/hashicorp/go-hclog"
)

var version = "dev"

var (
	flagConfigPath string
	flagTraceLevel string
	flagDebugger   string
	flagNoRedund   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "asteroid",
	Short:   "Asteroid - a pattern-matching, multi-paradigm scripting language",
	Long:    "asteroid drives the tree-walking Asteroid evaluator over a pre-built AST fixture, since this module implements the evaluator and unifier rather than a parser front end.",
	Version: version,
}

var runCmd = &cobra.Command{
	Use:   "run <fixture>",
	Short: "Evaluate a pre-built AST fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixture,
}

var checkCmd = &cobra.Command{
	Use:   "check <fixture>",
	Short: "Execute a fixture with the per-call redundancy checker forced on",
	Args:  cobra.ExactArgs(1),
	RunE:  checkFixture,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagTraceLevel, "trace-level", "", "override the configured hclog trace level")
	rootCmd.PersistentFlags().StringVar(&flagDebugger, "debugger", "", "override the configured debugger (none, console)")
	rootCmd.PersistentFlags().BoolVar(&flagNoRedund, "no-redundancy-check", false, "disable the per-call redundancy check")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flagConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.ApplyOverrides(flagTraceLevel, flagNoRedund, !flagNoRedund, flagDebugger)
	return cfg, nil
}

func buildCtx(cfg *config.Config) *eval.Ctx {
	level := hclog.LevelFromString(cfg.Settings.TraceLevel)
	tracer := tracing.New("asteroid", level, os.Stderr)

	var dbg debugger.Debugger
	switch cfg.Settings.Debugger {
	case "console":
		dbg = debugger.NewConsoleDebugger(os.Stdout)
	default:
		dbg = debugger.NopDebugger{}
	}

	ctx := eval.New(tracer, dbg)

	machine := &call.Machine{CheckRedundancy: cfg.Settings.CheckRedundancy}
	machine.Install()

	return ctx
}

func runFixture(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := buildCtx(cfg)

	prog, err := loadFixture(args[0])
	if err != nil {
		return err
	}

	result, err := ctx.ExecBody(prog)
	if err != nil {
		return except.Wrap(err, "evaluation failed")
	}
	fmt.Println(result.String())
	return nil
}

func checkFixture(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Settings.CheckRedundancy = true
	ctx := buildCtx(cfg)

	prog, err := loadFixture(args[0])
	if err != nil {
		return err
	}

	if _, err := ctx.ExecBody(prog); err != nil {
		return except.Wrap(err, "check failed")
	}
	fmt.Println("no redundant clauses detected")
	return nil
}

func loadFixture(name string) ([]term.Node, error) {
	prog, ok := fixtures.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q (available: %v)", name, fixtures.Names)
	}
	return prog, nil
}
