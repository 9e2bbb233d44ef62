// Package cli wires ghsearch's commands with cobra.
package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ghsearch/internal/config"
	"ghsearch/internal/eventbus"
	"ghsearch/internal/github"
	"ghsearch/internal/logger"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	language   string
	sort       string
	debounce   time.Duration
	logFile    string
	logLevel   string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ghsearch",
		Short: "Search GitHub repositories as you type",
		Long: `ghsearch queries the GitHub repository search API while you type.
Keystrokes are debounced, repeated queries are skipped, and only the
newest query's results are ever shown.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/ghsearch/config.toml)")
	flags.StringVarP(&opts.language, "language", "l", "", "restrict results to a language")
	flags.StringVarP(&opts.sort, "sort", "s", "", "sort by stars, forks, help-wanted-issues or updated")
	flags.DurationVar(&opts.debounce, "debounce", 0, "quiet period before a query is sent")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")

	rootCmd.AddCommand(newQueryCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) configService(bus eventbus.EventBus) config.ConfigService {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.NewConfigServiceWithBus(path, bus)
}

// apply layers flag overrides on top of the loaded config
func (o *options) apply(cfg *config.Config) error {
	if o.language != "" {
		cfg.Search.Language = o.language
	}
	if o.sort != "" {
		cfg.Search.Sort = o.sort
	}
	if o.debounce > 0 {
		cfg.Search.DebounceMs = int(o.debounce / time.Millisecond)
	}
	if o.logFile != "" {
		cfg.Logging.File = o.logFile
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	return config.Validate(cfg)
}

// openLogger opens the configured log file; the returned closer releases it
func openLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	f, err := logger.OpenFile(cfg.Logging.File)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	log := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: f,
	})
	return log, f, nil
}

func newClient(cfg *config.Config, log zerolog.Logger) *github.Client {
	return github.NewClient(nil, github.Options{
		BaseURL:           cfg.API.BaseURL,
		Token:             cfg.API.Token,
		UserAgent:         cfg.API.UserAgent,
		Timeout:           cfg.API.Timeout(),
		RequestsPerMinute: cfg.API.RequestsPerMinute,
		Query: github.QueryOptions{
			Language: cfg.Search.Language,
			Sort:     cfg.Search.Sort,
		},
	}, log)
}
