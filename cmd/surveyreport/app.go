package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/logging"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// App is the surveyreport command line.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
}

// NewApp creates the CLI application.
func NewApp() *App {
	app := &App{stdout: os.Stdout, stderr: os.Stderr}

	app.root = &cobra.Command{
		Use:   "surveyreport",
		Short: "Render survey response tallies as report figures",
		Long: `surveyreport turns categorical survey tallies into report figures: an
adoption donut, a five-panel rating dashboard and a subject usage bar chart.

Report definitions are YAML or JSON files naming the report and its responses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.initLogging()
		},
	}
	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", envOr("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	app.root.PersistentFlags().StringVar(&app.logFormat, "log-format", envOr("LOG_FORMAT", "console"), "Log format: console or json")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newRenderCmd(),
		app.newMetricsCmd(),
		app.newSamplesCmd(),
		app.newImportCmd(),
		app.newServeCmd(),
	)
	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI until it finishes or the process is interrupted.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) initLogging() {
	cfg := logging.DefaultConfig()
	cfg.Level = strings.ToLower(a.logLevel)
	cfg.Format = strings.ToLower(a.logFormat)
	cfg.Output = a.stderr
	logging.Init(cfg)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "surveyreport version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
		},
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	if err := NewApp().Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
