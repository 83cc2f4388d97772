package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studybuddy",
	Short: "AI study assistant backend",
	Long:  "StudyBuddy — HTTP backend for an AI study assistant with progress tracking, a calculator and math visualizations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", ".", "Directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}
