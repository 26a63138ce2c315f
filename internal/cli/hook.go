package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/report"
	"github.com/yaklabco/docstyle/pkg/runner"
)

func newHookCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "hook [files...]",
		Short: "Check staged files as a pre-commit hook",
		Long: `Check files staged for commit against the style guide.

Without arguments, the staged file list is read from git. Pre-commit
frameworks that pass filenames explicitly can supply them as arguments.
A blocking finding fails the hook; bypassing is the caller's concern
(e.g. git commit --no-verify).

Examples:
  docstyle hook                 # Check files staged in git
  docstyle hook a.xml b.html    # Check an explicit file list`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

func runHook(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cfg, workDir, err := loadConfig(ctx, cmd, flags, logger)
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		files, err = stagedFiles(ctx)
		if err != nil {
			return &ExitError{Code: ExitIOError, Err: err}
		}
	}

	files = filterCheckable(files, workDir)
	if len(files) == 0 {
		logger.Debug("no staged documentation files to check")
		return nil
	}

	engine := check.NewEngine(check.DefaultRegistry)
	checkRunner := runner.New(engine)

	result, err := checkRunner.Run(ctx, runner.Options{
		Paths:        files,
		WorkingDir:   workDir,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}

	rep := report.Build(result.FileFindings(), cfg)

	return renderAndExit(cmd, rep, cfg, flags)
}

// stagedFiles returns the paths staged for commit.
// Deleted files are excluded since they no longer exist to check.
func stagedFiles(ctx context.Context) ([]string, error) {
	out, err := runGit(ctx, "diff", "--cached", "--name-only", "--diff-filter=ACMR", "-z")
	if err != nil {
		return nil, fmt.Errorf("list staged files: %w", err)
	}

	var files []string
	for _, name := range strings.Split(out, "\x00") {
		if name != "" {
			files = append(files, name)
		}
	}
	return files, nil
}

// runGit executes a git command and returns its stdout.
func runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return stdout.String(), nil
}

// filterCheckable keeps files that exist and carry a checkable extension.
func filterCheckable(files []string, workDir string) []string {
	extensions := runner.DefaultExtensions()

	var out []string
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f))

		supported := false
		for _, e := range extensions {
			if ext == e {
				supported = true
				break
			}
		}
		if !supported {
			continue
		}

		path := f
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}

		out = append(out, f)
	}
	return out
}
