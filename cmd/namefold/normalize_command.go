package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"namefold/internal/normalize"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize NAME...",
		Short: "Show how names are normalized, tokenized, and blocked",
		Long: `Print the normalized form, token set, and block key for each NAME.
Useful for troubleshooting why two names did or did not end up in the same
group: only names sharing a block key are ever compared.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			norm := normalize.New(cfg.Matching.ExtraNoiseWords...)
			out := cmd.OutOrStdout()
			for i, name := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				normalized := norm.Normalize(name)
				tokens := norm.Tokenize(name)

				fmt.Fprintf(out, "Name:       %s\n", name)
				fmt.Fprintf(out, "Normalized: %s\n", displayValue(normalized))
				fmt.Fprintf(out, "Tokens:     %s\n", displayTokens(tokens))
				fmt.Fprintf(out, "Block key:  %s\n", displayValue(tokens.Min()))
			}
			return nil
		},
	}
	return cmd
}

func displayValue(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

func displayTokens(tokens normalize.TokenSet) string {
	if tokens.Len() == 0 {
		return "(none)"
	}
	sorted := make([]string, 0, tokens.Len())
	for token := range tokens {
		sorted = append(sorted, token)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
