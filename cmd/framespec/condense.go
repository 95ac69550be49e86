package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sequencekit/framespec/internal/manifest"
)

var manifestSrc string

var condenseCmd = &cobra.Command{
	Use:   "condense [paths...]",
	Short: "Condense a file sequence into a single expression",
	Long: `Condense a list of file paths that differ only by frame number into a
single condensed expression.

Paths are taken from the arguments, or from a manifest file (one path per
line, '#' comments allowed, .gz/.zst compression supported) given with
--manifest. The manifest may also be an http(s) URL.

Examples:
  framespec condense /renders/shot.1.exr /renders/shot.2.exr /renders/shot.5.exr

  framespec condense --manifest frames.txt.zst`,
	RunE: runCondense,
}

func init() {
	condenseCmd.Flags().StringVarP(&manifestSrc, "manifest", "m", "", "read paths from a manifest file or URL")
	rootCmd.AddCommand(condenseCmd)
}

func runCondense(cmd *cobra.Command, args []string) error {
	paths := args
	if manifestSrc != "" {
		if len(args) > 0 {
			return fmt.Errorf("--manifest and positional paths are mutually exclusive")
		}
		var err error
		paths, err = manifest.New().Read(cmd.Context(), manifestSrc)
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths given; pass them as arguments or via --manifest")
	}

	codec, err := newCodec()
	if err != nil {
		return err
	}

	condensed, err := codec.FilesToCondensed(paths)
	if err != nil {
		return fmt.Errorf("condensing %d paths: %w", len(paths), err)
	}

	fmt.Println(condensed)
	return nil
}
