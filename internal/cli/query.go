package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ghsearch/internal/domain"
	"ghsearch/internal/logger"
	"ghsearch/internal/pipeline"
	"ghsearch/internal/ui"
)

func newQueryCmd(opts *options) *cobra.Command {
	var usePager bool

	cmd := &cobra.Command{
		Use:   "query <term...>",
		Short: "Run one search and print the results",
		Long: `Run a single repository search with the configured language and sort
and print the results. Terms are joined with spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, strings.Join(args, " "), usePager)
		},
	}
	cmd.Flags().BoolVarP(&usePager, "pager", "p", false, "show the results in a pager")
	return cmd
}

func runQuery(cmd *cobra.Command, opts *options, term string, usePager bool) error {
	cfg, err := opts.configService(nil).Load()
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

	q := domain.QueryFromText(term)
	var rendered string
	sink := pipeline.NewSink(pipeline.RenderFunc(func(q domain.Query, res domain.SearchResult) {
		rendered = ui.RenderResultsPlain(q, res)
	}), log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	out := pipeline.Guard(ctx, newClient(cfg, log), 1, q)
	sink.Consume(out)
	if out.Err != nil {
		return fmt.Errorf("search failed: %w", out.Err)
	}

	if usePager {
		return ui.Page(rendered)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}
