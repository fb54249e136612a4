// Package main provides the command line entrypoint for stepflow.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow"
	"go.flow.arcalot.io/stepflow/config"
	"go.flow.arcalot.io/stepflow/internal/backend/yamlglue"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
)

// These variables are filled using ldflags during the build process.
var (
	version = "development"
	commit  = "unknown"
	date    = "unknown"
)

// ExitCodeOK signals that all scenarios passed.
const ExitCodeOK = 0

// ExitCodeInvalidData signals that the configuration, the suite file or the step definitions could not be loaded.
const ExitCodeInvalidData = 1

// ExitCodeIncomplete indicates that no step failed, but some steps were undefined or pending.
const ExitCodeIncomplete = 2

// ExitCodeScenarioFailed indicates that at least one step failed.
const ExitCodeScenarioFailed = 3

// exitError carries the exit code a command should terminate with.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func main() {
	tempLogger := log.New(log.Config{
		Level:       log.LevelInfo,
		Destination: log.DestinationStdout,
		Stdout:      os.Stderr,
	})
	rootCmd := newRootCommand(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.err != nil {
				tempLogger.Errorf("%v", exitErr.err)
			}
			os.Exit(exitErr.code)
		}
		tempLogger.Errorf("%v", err)
		os.Exit(ExitCodeInvalidData)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stepflow",
		Short:         "Run behavior scenarios against pluggable step definition backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.AddCommand(newRunCommand(), newVersionCommand(), newConfigSchemaCommand(), newGlueSchemaCommand())
	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stepflow version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(
				cmd.OutOrStdout(),
				"stepflow\n"+
					"========\n"+
					"Version: %s\n"+
					"Commit: %s\n"+
					"Date: %s\n",
				version, commit, date,
			)
		},
	}
}

func newConfigSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config-schema",
		Short: "Print the schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.SchemaYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newGlueSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "glue-schema",
		Short: "Print the JSON schema of YAML step definition files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yamlglue.JSONSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

type runOptions struct {
	configFile string
	glue       []string
	locale     string
	tags       []string
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run SUITE",
		Short: "Run every scenario of a YAML suite file",
		Long: "Run every scenario of a YAML suite file. Step definitions are loaded from the configured code paths " +
			"(STEPFLOW_GLUE replaces them) followed by the --glue paths. After the run a summary and snippets for " +
			"the undefined steps are printed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(opts, args[0], cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.configFile, "config", "", "The stepflow configuration file to load, if any.")
	cmd.Flags().StringArrayVar(&opts.glue, "glue", nil, "Extra code path to load step definitions from. May be repeated.")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "The locale to run the steps with, e.g. en-US.")
	cmd.Flags().StringArrayVar(
		&opts.tags,
		"tags",
		nil,
		"Only run scenarios matching the tag expression, e.g. @fast,@smoke or ~@slow. Repeated flags must all match.",
	)
	return cmd
}

func loadConfig(opts *runOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		cfg, err = config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	cfg.Log.Stdout = os.Stderr
	return cfg, nil
}

func runSuite(opts *runOptions, suiteFile string, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return &exitError{ExitCodeInvalidData, err}
	}
	r, err := stepflow.NewDefault(cfg)
	if err != nil {
		return &exitError{ExitCodeInvalidData, fmt.Errorf("failed to initialize runtime (%w)", err)}
	}
	logger := log.New(cfg.Log).WithLabel("source", "main")
	locale, err := r.Locale()
	if err != nil {
		return &exitError{ExitCodeInvalidData, err}
	}

	data, err := os.ReadFile(suiteFile) //nolint:gosec
	if err != nil {
		return &exitError{ExitCodeInvalidData, fmt.Errorf("failed to read suite file %s (%w)", suiteFile, err)}
	}
	suite, err := scenario.LoadSuite(data, suiteFile)
	if err != nil {
		return &exitError{ExitCodeInvalidData, err}
	}

	recorder := report.NewRecorder()
	reporter := report.Multi(report.NewLogReporter(logger), recorder)
	status := report.StatusPassed
	for _, sc := range suite.Scenarios() {
		if !scenario.MatchesTagFilter(sc.Tags, opts.tags) {
			logger.Debugf("Skipping scenario %s, it does not match the tag filter.", sc.Name)
			continue
		}
		scenarioStatus, err := r.RunScenario(sc, reporter, opts.glue, locale)
		if err != nil {
			return &exitError{ExitCodeInvalidData, fmt.Errorf("failed to run scenario %s (%w)", sc.Name, err)}
		}
		status = report.Worst(status, scenarioStatus)
	}

	if err := report.PrintSummary(stdout, recorder.Counts()); err != nil {
		return err
	}
	if err := report.PrintUndefinedSteps(stdout, r.UndefinedSteps()); err != nil {
		return err
	}
	if err := report.PrintSnippets(stdout, r.Snippets()); err != nil {
		return err
	}
	switch status {
	case report.StatusFailed:
		return &exitError{ExitCodeScenarioFailed, nil}
	case report.StatusPending, report.StatusUndefined:
		return &exitError{ExitCodeIncomplete, nil}
	default:
		return nil
	}
}
