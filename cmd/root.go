package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/minigrep/minigrep"
	"github.com/minigrep/minigrep/logging"
	"github.com/minigrep/minigrep/scan"
	"github.com/minigrep/minigrep/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configDescription = `config file path
order of precedence:
1. --config/-c
2. env var MINIGREP_CONFIG
3. env var MINIGREP_CONFIG_TOML with the file content
4. ./.minigrep.toml
If none of the four options are used, then minigrep will use the default config`

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] [--] QUERY PATH",
	Short: "Print the lines of a file that contain QUERY",
	Long: `Print the lines of a file that contain QUERY.

Matching is case-sensitive unless the CASE_INSENSITIVE environment variable
is set (to any value) or the config file sets case_insensitive = true.

A QUERY starting with "-" must follow "--", e.g. minigrep -- -v notes.txt`,
	Version:       version.Version,
	Args:          validateArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}
		// An explicit --log-level wins over log_level in the config file.
		if !cmd.Flags().Changed("log-level") {
			setLogLevel(viper.GetString(keyLogLevel))
		}
		return nil
	},
	RunE: runSearch,
}

func init() {
	cobra.OnInitialize(initLog)
	rootCmd.PersistentFlags().StringP("config", "c", "", configDescription)
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	// Declared without a shorthand so cobra does not claim -v.
	rootCmd.Flags().Bool("version", false, "version for minigrep")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before a QUERY that starts with '-')", err)
	})

	err := viper.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	if err != nil {
		logging.Fatal().Msgf("err binding log-level %s", err.Error())
	}
}

// initLog applies --log-level before the config file is read, so config
// loading is logged at the requested level.
func initLog() {
	ll, err := rootCmd.Flags().GetString("log-level")
	if err != nil {
		logging.Fatal().Msg(err.Error())
	}
	setLogLevel(ll)
}

// setLogLevel leaves the level unchanged when ll is not recognised.
func setLogLevel(ll string) {
	var logLevel zerolog.Level
	switch strings.ToLower(ll) {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "err", "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logging.Warn().Msgf("unknown log level: %s", ll)
		return
	}
	logging.Logger = logging.Logger.Level(logLevel)
}

// argv rebuilds the os.Args layout NewConfig expects, with the program name
// first.
func argv(cmd *cobra.Command, args []string) []string {
	return append([]string{cmd.Name()}, args...)
}

// validateArgs rejects a short argument list before any config file or
// target file is touched.
func validateArgs(cmd *cobra.Command, args []string) error {
	_, err := minigrep.NewConfig(argv(cmd, args), true)
	return err
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := minigrep.NewConfig(argv(cmd, args), caseSensitive(viper.GetViper(), os.LookupEnv))
	if err != nil {
		return err
	}

	logging.Debug().
		Str("query", cfg.Query).
		Str("path", cfg.Path).
		Bool("case_sensitive", cfg.CaseSensitive).
		Msg("starting search")

	return scan.Run(cfg, cmd.OutOrStdout())
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Fatal().Msg(err.Error())
	}
}
