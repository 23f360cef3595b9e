package cmd

import (
	"io"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version info injected via ldflags at build time
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// resolvedVersion returns Version unless it is "dev" and Go build info
// carries a real module version.
func resolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// NewRootCmd builds the flowlabel command tree. Flags can also be set through
// FLOWLABEL_* environment variables, e.g. FLOWLABEL_LOG_LEVEL=debug.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FLOWLABEL")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "flowlabel",
		Short: "Currency-scaled labels for diagram nodes",
		Long: `flowlabel formats node values for flow diagrams such as Sankey charts.

Each label holds the node name, the value on the short scale ($950, $1.5k,
$2M, $3.1B) and an optional year-over-year growth note in parentheses.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), v.GetString("log_level"), v.GetString("log_format"))
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log_format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(
		newLabelCmd(),
		newGenerateCmd(v),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func setupLogging(w io.Writer, logLevel, logFormat string) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	// Logs go to stderr so stdout carries only labels.
	if logFormat == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
			With().
			Timestamp().
			Logger()
	}
}
