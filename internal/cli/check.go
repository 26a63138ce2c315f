package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/docstyle/internal/configloader"
	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/pkg/check"
	_ "github.com/yaklabco/docstyle/pkg/check/rules" // Register built-in rules
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/report"
	"github.com/yaklabco/docstyle/pkg/runner"
)

type checkFlags struct {
	format   string
	severity string
	failOn   string
	jobs     int
	ignore   []string
	enable   []string
	disable  []string
	strict   bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check documentation files against the style guide",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check documentation files for style guide violations.

By default, checks all .xml, .html, .htm, .md, and .txt files in the
current directory and subdirectories. Specify paths to check specific
files or directories, or "-" to read a single document from stdin.

Examples:
  docstyle check                     # Check current directory
  docstyle check docs/               # Check docs directory
  docstyle check guide.xml           # Check single file
  docstyle check -                   # Check pasted content from stdin
  docstyle check --format json       # Output as JSON for CI
  docstyle check --severity warning  # Hide info findings
  docstyle check --fail-on warning   # Warnings also fail the run
  docstyle check --strict            # Treat warnings as errors for exit code`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cfg, workDir, err := loadConfig(ctx, cmd, flags, logger)
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "-" {
		return checkStdin(ctx, cmd, cfg, flags)
	}

	engine := check.NewEngine(check.DefaultRegistry)
	checkRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := checkRunner.Run(ctx, runOpts)
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}

	logger.Debug("check run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
		logging.FieldRuleFaults, result.Stats.RuleFaults,
	)

	rep := report.Build(result.FileFindings(), cfg)

	return renderAndExit(cmd, rep, cfg, flags)
}

// checkStdin checks a single pasted document. Findings carry line-only
// locations since there is no file path.
func checkStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config, flags *checkFlags) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		logging.FromContext(ctx).Info("reading from terminal; finish input with Ctrl-D")
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("read stdin: %w", err)}
	}

	engine := check.NewEngine(check.DefaultRegistry)
	fr, err := engine.CheckDocument(ctx, "", content, cfg)
	if err != nil {
		return &ExitError{Code: ExitInternalError, Err: err}
	}

	rep := report.Build([]report.FileFindings{{Findings: fr.Findings}}, cfg)

	return renderAndExit(cmd, rep, cfg, flags)
}

// loadConfig merges config sources with CLI flags and returns the final
// configuration plus the working directory.
func loadConfig(
	ctx context.Context,
	cmd *cobra.Command,
	flags *checkFlags,
	logger *log.Logger,
) (*config.Config, string, error) {
	cliCfg := &config.Config{
		Format:       config.OutputFormat(flags.format),
		Jobs:         flags.jobs,
		Ignore:       flags.ignore,
		EnableRules:  flags.enable,
		DisableRules: flags.disable,
	}

	if flags.severity != "" {
		sev, ok := config.ParseSeverity(flags.severity)
		if !ok {
			return nil, "", &ExitError{Code: ExitInvalidUsage,
				Err: fmt.Errorf("invalid --severity %q: must be error, warning, or info", flags.severity)}
		}
		cliCfg.MinSeverity = sev
	}

	if flags.failOn != "" {
		sev, ok := config.ParseSeverity(flags.failOn)
		if !ok {
			return nil, "", &ExitError{Code: ExitInvalidUsage,
				Err: fmt.Errorf("invalid --fail-on %q: must be error, warning, or info", flags.failOn)}
		}
		cliCfg.FailOn = sev
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		configPath = ""
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", &ExitError{Code: ExitIOError, Err: fmt.Errorf("get working directory: %w", err)}
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", &ExitError{Code: ExitConfigError, Err: err}
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	cfg := loadResult.Config
	if cfg.FailOn == "" {
		cfg.FailOn = config.SeverityError
	}
	if cfg.MinSeverity == "" {
		cfg.MinSeverity = config.SeverityInfo
	}

	return cfg, workDir, nil
}

// renderAndExit renders the report and converts it into an exit status.
func renderAndExit(cmd *cobra.Command, rep *report.Report, cfg *config.Config, flags *checkFlags) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format := cfg.Format
	if format == "" {
		format = config.FormatText
	}
	if !format.IsValid() {
		return &ExitError{Code: ExitInvalidUsage,
			Err: fmt.Errorf("invalid --format %q: must be text or json", format)}
	}

	renderer, err := report.NewRenderer(report.Options{
		Writer:          cmd.OutOrStdout(),
		Format:          format,
		Color:           colorMode,
		ShowSummary:     true,
		ShowSuggestions: true,
	})
	if err != nil {
		return &ExitError{Code: ExitInternalError, Err: err}
	}

	if err := renderer.Render(rep); err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("render report: %w", err)}
	}

	code := ExitCodeFromReport(rep, cfg.FailOn, flags.strict)
	if code != ExitSuccess {
		return &ExitError{Code: code}
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().StringVar(&flags.severity, "severity", "", "minimum severity to show: error, warning, info")
	cmd.Flags().StringVar(&flags.failOn, "fail-on", "", "severity threshold for failing status (default error)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or families to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or families to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
}
