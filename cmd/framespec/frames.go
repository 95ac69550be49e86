package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var framesPack bool

var framesCmd = &cobra.Command{
	Use:   "frames [framespec | numbers...]",
	Short: "Convert between frame numbers and a framespec",
	Long: `Convert between a framespec string and the frame numbers it describes.

By default the single argument is a framespec and the expanded frame
numbers are printed one per line. With --pack the arguments are frame
numbers and the condensed framespec is printed instead.

Examples:
  framespec frames "1-10x2,100"

  framespec frames --pack 1 2 3 5 7 9`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().BoolVar(&framesPack, "pack", false, "condense frame number arguments into a framespec")
	rootCmd.AddCommand(framesCmd)
}

func runFrames(cmd *cobra.Command, args []string) error {
	c, err := newCodec()
	if err != nil {
		return err
	}

	if framesPack {
		frames := make([]int, 0, len(args))
		for _, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("not a frame number: %q", arg)
			}
			frames = append(frames, v)
		}
		fmt.Println(c.FramesToSpec(frames))
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("expected one framespec argument, got %d", len(args))
	}

	seq, err := c.ExpandFrames(args[0])
	if err != nil {
		return fmt.Errorf("expanding %q: %w", args[0], err)
	}
	for v := range seq {
		fmt.Println(v)
	}
	return nil
}
