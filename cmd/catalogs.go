package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/gsinfogaurav-sudo/music/internal/catalog"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Dump the note, chord, scale, interval and meter tables",
	Run: func(cmd *cobra.Command, args []string) {
		spew.Dump(catalog.Notes)
		spew.Dump(catalog.Chords)
		spew.Dump(catalog.Scales)
		spew.Dump(catalog.Intervals)
		spew.Dump(catalog.TimeSignatures)
	},
}

func init() {
	rootCmd.AddCommand(catalogsCmd)
}
