package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ghsearch/internal/config"
	"ghsearch/internal/eventbus"
	"ghsearch/internal/pipeline"
	"ghsearch/internal/ui"
)

// sourceBuffer sizes the raw event queue between the model and the pipeline
const sourceBuffer = 64

func runTUI(cmd *cobra.Command, opts *options) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, _, err := config.LoadOrCreate(opts.configService(nil))
	if err != nil {
		return err
	}
	if err := opts.apply(cfg); err != nil {
		return err
	}

	log, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	bus := eventbus.New(log)
	defer bus.Close()

	src := pipeline.NewSource(sourceBuffer)
	bridge := ui.NewBridge(bus, log)
	p := pipeline.New(
		src,
		newClient(cfg, log),
		pipeline.NewSink(bridge, log),
		bus,
		pipeline.Options{
			Debounce:     cfg.Search.Debounce(),
			SearchOnBlur: cfg.Search.SearchOnBlur,
		},
		log,
	)

	model := ui.NewModel(cfg, src, bus, log)

	var programOpts []tea.ProgramOption
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UISettings.ReportFocus {
		programOpts = append(programOpts, tea.WithReportFocus())
	}
	programOpts = append(programOpts, tea.WithContext(ctx))
	program := tea.NewProgram(model, programOpts...)
	model.SetProgram(program)

	pipeDone := make(chan error, 1)
	go func() {
		pipeDone <- p.Run(ctx)
	}()
	go bridge.Run(ctx, program.Send)

	log.Info().Str("language", cfg.Search.Language).Str("sort", cfg.Search.Sort).Msg("starting UI")
	_, runErr := program.Run()

	src.Close()
	cancel()
	if err := <-pipeDone; err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("pipeline stopped")
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		log.Error().Err(runErr).Msg("error running program")
		return fmt.Errorf("error running program: %w", runErr)
	}
	log.Info().Msg("UI exited normally")
	return nil
}
