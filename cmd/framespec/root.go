package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sequencekit/framespec"
)

var (
	// Global flags.
	stepDelimiter string
	noRebalance   bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "framespec",
	Short: "Condense and expand numbered file sequences",
	Long: `Framespec converts between lists of frame numbers (or numbered file
names) and the compact framespec notation used for rendered-image
sequences, e.g. 1-10x2,20-30.

Examples:
  # Condense a file sequence into one expression
  framespec condense /renders/shot.1.exr /renders/shot.2.exr /renders/shot.5.exr

  # Expand a condensed expression back into file names
  framespec expand "/renders/shot.1-3,5.exr" --padding 4

  # Expand a bare framespec into frame numbers
  framespec frames "1-10x2,100"

  # Scan a directory or bucket and condense every sequence in it
  framespec scan gs://renders/show/seq010`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&stepDelimiter, "step-delimiter", "d", "x", "string separating a range from its step")
	rootCmd.PersistentFlags().BoolVar(&noRebalance, "no-rebalance", false, "disable the second grouping pass")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newCodec builds a codec from the persistent flags.
func newCodec(extra ...framespec.Option) (*framespec.Codec, error) {
	opts := []framespec.Option{
		framespec.WithStepDelimiter(stepDelimiter),
		framespec.WithTwoPassRebalancing(!noRebalance),
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, framespec.WithLogger(logger))
	}
	return framespec.New(append(opts, extra...)...)
}
