package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "promptparse",
	Short: "Natural-language to JSON prompt conversion service",
	Long: `Promptparse turns free-text descriptions into structured JSON prompts
through an LLM provider, validates JSON against built-in schemas, and
captures a marketing waitlist. Run "promptparse serve" to start the
HTTP API.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".promptparse.yml", "config file path")
}
