package main

import (
	"bufio"
	"errors"
	"fmt"
	"humandate/internal/config"
	humandateparser "humandate/internal/implementations/human_date_parser"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var errParseFailed = errors.New("query could not be parsed")

func promptCmd() *cobra.Command {
	flags := &parserFlags{}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Read queries line by line and print each result",
		Long: `Reads one query per line until end of input or "exit".
Every line is resolved against the current moment unless --relative-to is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			parser := humandateparser.New(time.Now)
			out := newPrinter(cmd.OutOrStdout())
			interactive := isTerminal(cmd.InOrStdin())

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				if interactive {
					fmt.Fprint(cmd.OutOrStdout(), "> ")
				}
				if !scanner.Scan() {
					break
				}
				query := strings.TrimSpace(scanner.Text())
				switch query {
				case "":
					continue
				case "exit", "quit":
					return nil
				}

				options, err := flags.options(cfg, time.Now())
				if err != nil {
					return err
				}
				result, err := parser.ParseDetailed(cmd.Context(), query, options)
				if err != nil {
					out.failure(err)
					continue
				}
				out.result(result, flags.tokens)
			}
			return scanner.Err()
		},
	}

	flags.register(cmd, true)
	return cmd
}
