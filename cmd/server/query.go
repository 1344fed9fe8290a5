package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"feedback-browser/internal/database"
	"feedback-browser/internal/filter"
	"feedback-browser/internal/repository"
)

func newQueryCommand(opts *rootOptions) *cobra.Command {
	var filters string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter the feedback collection and print the result as JSON",
		Example: `  feedback-browser query --filters '{"importance": ["High"]}'
  feedback-browser query --filters '{"date": {"start": "2024-06-01"}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, os.Stderr)
			if err != nil {
				return err
			}

			set, violations, err := filter.Decode([]byte(filters))
			if len(violations) > 0 {
				msgs := make([]string, 0, len(violations))
				for _, v := range violations {
					msgs = append(msgs, fmt.Sprintf("%s: %s", v.Path, v.Type))
				}
				return fmt.Errorf("invalid filters: %s", strings.Join(msgs, "; "))
			}
			if err != nil {
				return err
			}

			db, err := database.New(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			all, err := repository.NewFeedbackRepository(db).GetAll(cmd.Context())
			if err != nil {
				return err
			}
			feedback, err := filter.Apply(all, set)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"data": feedback})
		},
	}

	cmd.Flags().StringVar(&filters, "filters", "", "filters as JSON, e.g. '{\"customer\": [\"Brex\"]}'")
	return cmd
}
