package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"namefold/internal/dedupe"
	"namefold/internal/input"
	"namefold/internal/logging"
	"namefold/internal/report"
)

func newGroupCommand(ctx *commandContext) *cobra.Command {
	var threshold float64
	var jsonFlag bool
	var exportPath string

	cmd := &cobra.Command{
		Use:   "group FILE",
		Short: "Cluster near-duplicate names from a file",
		Long: `Read one company name per line from FILE, cluster near-duplicates, and
print every group of two or more names. Blank lines are skipped. Grouping
compares normalized forms (lowercase, accents and punctuation stripped,
noise words removed) but output preserves the original spelling.

Examples:
  namefold group names.txt
  namefold group names.txt --threshold 0.6
  namefold group names.txt --json
  namefold group names.txt --export groups.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := ctx.newRunLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			logger = logging.NewComponentLogger(logger, "group")

			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Matching.Threshold
			}

			path := args[0]
			names, err := input.LoadFile(path)
			if err != nil {
				return err
			}
			logger.Debug("names loaded", logging.String("file", path), logging.Int("names", len(names)))

			groups, err := dedupe.FindDuplicateGroups(names, dedupe.Options{
				Threshold:       threshold,
				ExtraNoiseWords: cfg.Matching.ExtraNoiseWords,
				Logger:          logger,
			})
			if err != nil {
				return err
			}

			result := report.New(path, threshold, len(names), groups)

			out := cmd.OutOrStdout()
			switch {
			case jsonFlag || cfg.Output.Format == "json":
				if err := report.WriteJSON(out, result); err != nil {
					return err
				}
			case cfg.Output.Format == "table" && isTerminal(out):
				fmt.Fprintln(out, renderGroupTable(result))
			default:
				renderGroupsPlain(out, result)
			}

			if exportPath != "" {
				if err := report.ExportFile(exportPath, result); err != nil {
					return fmt.Errorf("export results: %w", err)
				}
				logger.Info("results exported", logging.String("path", exportPath))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", dedupe.DefaultThreshold,
		"Minimum Jaccard similarity for two names to be grouped, in (0, 1]")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&exportPath, "export", "",
		"Also write the result to this file (.json, .csv, or .xlsx)")

	return cmd
}

// renderGroupsPlain prints each group with a 1-based index, one member per
// indented line.
func renderGroupsPlain(w io.Writer, result report.Result) {
	if len(result.Groups) == 0 {
		fmt.Fprintf(w, "No duplicate groups found among %d names.\n", result.Names)
		return
	}
	for i, group := range result.Groups {
		fmt.Fprintf(w, "Group %d (%d names):\n", i+1, group.Size())
		for _, member := range group.Members {
			fmt.Fprintf(w, "  %s\n", member)
		}
	}
	fmt.Fprintf(w, "\n%d groups, %d duplicate names out of %d input names.\n",
		result.Stats.Groups, result.Stats.Duplicates, result.Names)
}
