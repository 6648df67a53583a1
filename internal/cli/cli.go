// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

// Package cli implements the pondfinder command: it runs a single platform
// detection and reports the verdict on stdout, in plain text, JSON, or YAML.
//
// The command is configured through flags, through “PONDFINDER_”-prefixed
// environment variables, and optionally through a “config.yaml” in either
// the user's configuration directory (under “pondfinder/”) or in
// “/etc/pondfinder/”, in decreasing order of precedence.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/siemens/pondfinder"
	"github.com/siemens/pondfinder/internal/buildmeta"
	"github.com/siemens/pondfinder/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/siemens/pondfinder/log/logrus" // activate the logrus adapter
)

// EnvPrefix is the prefix of the environment variables overriding the
// command's configuration, such as “PONDFINDER_OUTPUT”.
const EnvPrefix = "PONDFINDER"

// Names of the command's configuration keys, doubling as flag names.
const (
	OutputSetting   = "output"
	LogLevelSetting = "log-level"
)

// logrusLevels maps the log level names accepted by the command to the
// corresponding logrus levels of the standard logger acting as the log sink.
// The zero key is the default: the command keeps quiet unless asked
// otherwise.
var logrusLevels = map[string]logrus.Level{
	"":        logrus.FatalLevel,
	"off":     logrus.FatalLevel,
	"error":   logrus.ErrorLevel,
	"warning": logrus.WarnLevel,
	"info":    logrus.InfoLevel,
	"debug":   logrus.DebugLevel,
}

// New returns the pondfinder root command, reporting detections of the
// supplied finder. Passing a nil finder defers to a stock finder probing the
// process's real surroundings; tests instead inject finders kept in
// aquariums of their own making.
func New(finder *pondfinder.Finder) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "pondfinder"))
	}
	v.AddConfigPath("/etc/pondfinder")

	rootCmd := &cobra.Command{
		Use:   "pondfinder",
		Short: "detect the platform this process is running on",
		Long: `pondfinder detects the “pond” its process is living in: a Kubernetes pod,
a standalone container (and then which container engine it belongs to), or
no container at all. Evidence is gathered solely from within the process's
own environment, so no container engine API access is needed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      version(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(v); err != nil {
				return err
			}
			if err := configureLogging(v.GetString(LogLevelSetting), cmd.ErrOrStderr()); err != nil {
				return err
			}
			f := finder
			if f == nil {
				f = pondfinder.New()
			}
			return render(cmd.OutOrStdout(), v.GetString(OutputSetting), f.Detect(cmd.Context()))
		},
	}
	rootCmd.PersistentFlags().StringP(OutputSetting, "o", TextOutput,
		"report format, one of \"text\", \"json\", or \"yaml\"")
	rootCmd.PersistentFlags().String(LogLevelSetting, "",
		"maximum level of detection log messages still emitted on stderr,\n"+
			"one of \"off\", \"error\", \"warning\", \"info\", or \"debug\"")
	_ = v.BindPFlag(OutputSetting, rootCmd.PersistentFlags().Lookup(OutputSetting))
	_ = v.BindPFlag(LogLevelSetting, rootCmd.PersistentFlags().Lookup(LogLevelSetting))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the pondfinder root command, exiting the process non-zero
// when the command fails. Detections as such never fail; only command-level
// mishaps (such as an unknown flag or report format) do.
func Execute() {
	if err := New(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// readConfig pulls in an optional configuration file; a missing file is
// perfectly fine, only an unreadable or malformed one is reported.
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notfound viper.ConfigFileNotFoundError
		if !errors.As(err, &notfound) {
			return fmt.Errorf("cannot read configuration file, reason: %w", err)
		}
	}
	return nil
}

// configureLogging points the logrus sink at the command's stderr and
// translates the configured log level into matching facade and logrus
// levels. The default is to keep quiet, as detections contain their probe
// failures anyway.
func configureLogging(levelname string, w io.Writer) error {
	logruslevel, ok := logrusLevels[strings.ToLower(levelname)]
	if !ok {
		return fmt.Errorf("unknown log level %q, expected one of "+
			"\"off\", \"error\", \"warning\", \"info\", or \"debug\"", levelname)
	}
	logrus.SetOutput(w)
	logrus.SetLevel(logruslevel)
	if logruslevel >= logrus.DebugLevel {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}

// version renders the build metadata of this binary into a single version
// line.
func version() string {
	return fmt.Sprintf("%s (built %s from Git SHA %s)",
		buildmeta.Version, buildmeta.Date, buildmeta.Commit)
}

// newVersionCmd returns the “version” subcommand reporting the build
// metadata of this binary.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the pondfinder version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pondfinder %s\n", version())
		},
	}
}
