package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "music",
	Short: "A keyboard trainer for early music learners",
	Long: `music opens a seven-key on-screen keyboard with a set of small
games: free play, note matching, chord building, scale practice,
interval training and beat counting.`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}
