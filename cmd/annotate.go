package cmd

import (
	"github.com/HiDiHlabs/geanno/internal/geanno"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// annotateCmd is for annotating base regions with reference collections.
var annotateCmd = &cobra.Command{
	Use:   "annotate [base regions]",
	Run:   geanno.AnnotateCmd,
	Short: "Annotate base regions with the reference collections in a database table",
	Long: `Annotate each base region in a BED-like input file against every reference
collection listed in a database table.

The output is the input with one extra column per REGION.TYPE. Each cell
holds the qualifying references as "label(distance)", separated by ";", or
NA if no reference of that type lies within its MAX.DISTANCE. Distances are
signed: negative when the reference is before the base region, positive
after it, zero within it. Rows keep their input order`,
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	annotateCmd.Flags().StringP("in", "i", "", "input file with base regions (BED-like, \"-\" for stdin)")
	annotateCmd.Flags().StringP("out", "o", "", "output file for the annotated table (\"-\" for stdout)")
	annotateCmd.Flags().StringP("database", "d", "", "database table listing the reference collections")
	annotateCmd.Flags().IntP("threads", "t", 0, "number of annotation workers (default all CPUs)")

	annotateCmd.MarkFlagRequired("database")

	viper.BindPFlag("threads", annotateCmd.Flags().Lookup("threads"))

	RootCmd.AddCommand(annotateCmd)
}
