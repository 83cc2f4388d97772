package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"studybuddy_backend/internal/config"
	"studybuddy_backend/internal/student"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the stored student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		store := student.NewStore(cfg.Data.StudentPath(), nil)
		out, err := json.MarshalIndent(store.Profile(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
