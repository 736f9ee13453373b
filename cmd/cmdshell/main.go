// Package main provides the cmdshell CLI entry point: an interactive
// interpreter by default, plus a one-shot exec mode for scripts and CI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cmdshell/internal/filters"
	"cmdshell/internal/logger"
	"cmdshell/internal/shell"
	"cmdshell/pkg/shelltypes"
)

var (
	logLevel string
	logFile  string
	version  = "0.1.0" // set at build time
)

// rootCmd starts the interactive loop when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "cmdshell",
	Short: "cmdshell - an embeddable command interpreter",
	Long: `cmdshell drives a registry of named commands and options through a
filter chain with output redirection and piping, expanding $(Option)
macros in the input.`,
	Run: runShell,
}

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single command and exit",
	Args:  cobra.MinimumNArgs(1),
	Run:   runExec,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("cmdshell v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A missing .env is fine; it only supplies CMDSHELL_* defaults.
	_ = godotenv.Load()

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func newInterpreter() *shell.Interpreter {
	interp, err := shell.New(baseHandler())
	if err != nil {
		logger.Fatal("Failed to construct interpreter", "error", err)
	}
	interp.AddFilter(filters.NewRedirect(nil))
	interp.AddFilter(filters.NewPipe())
	return interp
}

// baseHandler donates the commands the standalone binary ships with; an
// embedding program would donate its own instead.
func baseHandler() shelltypes.Handler {
	return shelltypes.HandlerSet{
		Cmds: []shelltypes.Command{
			&shelltypes.Cmd{
				Name:  "echo",
				Group: "Text",
				Desc:  "Print arguments to output",
				Run: func(ctx shelltypes.Context, args []string) error {
					_, err := fmt.Fprintln(ctx.Out(), strings.Join(args, " "))
					return err
				},
			},
		},
	}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting cmdshell", "version", version)

	interp := newInterpreter()
	if err := interp.RunLoop(); err != nil {
		logger.Fatal("Interpreter loop failed", "error", err)
	}
	os.Exit(interp.ErrorLevel())
}

func runExec(_ *cobra.Command, args []string) {
	interp := newInterpreter()
	interp.Report(interp.Run(args))
	os.Exit(interp.ErrorLevel())
}
