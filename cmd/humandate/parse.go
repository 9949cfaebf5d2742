package main

import (
	"humandate/internal/config"
	humandateparser "humandate/internal/implementations/human_date_parser"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	flags := &parserFlags{}

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse a single query and print the resulting instant",
		Example: `  humandate parse tomorrow at 5 PM
  humandate parse --relative-to 2019-05-16T14:30:00Z --tokens last june`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			options, err := flags.options(cfg, time.Now())
			if err != nil {
				return err
			}

			parser := humandateparser.New(time.Now)
			result, err := parser.ParseDetailed(cmd.Context(), strings.Join(args, " "), options)
			out := newPrinter(cmd.OutOrStdout())
			if err != nil {
				out.failure(err)
				return errParseFailed
			}
			out.result(result, flags.tokens)
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}
