package cmd

import (
	"github.com/HiDiHlabs/geanno/internal/geanno"
	"github.com/spf13/cobra"
)

// databaseCmd is for validating and printing a database table.
var databaseCmd = &cobra.Command{
	Use:   "database",
	Run:   geanno.DatabaseCmd,
	Short: "Validate a database table and print its reference collections",
	Long: `Read a database table, check every row and print the reference collections
it lists. Errors out if a row has an unknown token, a bad count, or names a
reference file that is not on the filesystem`,
	SuggestionsMinimumDistance: 2,
}

// set flags
func init() {
	databaseCmd.Flags().StringP("database", "d", "", "database table listing the reference collections")

	databaseCmd.MarkFlagRequired("database")

	RootCmd.AddCommand(databaseCmd)
}
