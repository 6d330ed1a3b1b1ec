package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tricreta/promptparse/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize promptparse configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure promptparse and generates a .promptparse.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
