package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"radio-quiz/internal/app"
	"radio-quiz/internal/domain"
)

// NewProgressCmd inspects or clears stored progress.
func NewProgressCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show or reset saved quiz progress",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the saved progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withProgressStore(cmd, *configPath, func(store app.ProgressStore) error {
				data, err := json.Marshal(store.Load(cmd.Context()))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Start over from the first question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withProgressStore(cmd, *configPath, func(store app.ProgressStore) error {
				if err := store.Save(cmd.Context(), domain.ProgressState{}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "progress reset")
				return nil
			})
		},
	})
	return cmd
}

func withProgressStore(cmd *cobra.Command, configPath string, fn func(app.ProgressStore) error) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	store, closeStore, err := openProgressStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}
