package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghsearch/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or create the ghsearch configuration",
		Long: `View or create the ghsearch configuration.

Without arguments, prints the effective configuration as TOML,
including any flag overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	var force bool
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, opts, force)
		},
	}
	configInitCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), opts.configService(nil).Path())
			return err
		},
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.configService(nil).Load()
	if err != nil {
		return err
	}
	if err := opts.apply(cfg); err != nil {
		return err
	}
	if cfg.API.Token != "" {
		cfg.API.Token = "********"
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, opts *options, force bool) error {
	cs := opts.configService(nil)
	if _, err := os.Stat(cs.Path()); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", cs.Path())
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := cs.Save(config.DefaultConfig()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", cs.Path())
	return err
}
