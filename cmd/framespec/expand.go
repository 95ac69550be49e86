package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sequencekit/framespec/internal/codec"
)

var (
	expandPadding int
	expandOutput  string
)

var expandCmd = &cobra.Command{
	Use:   "expand [expression]",
	Short: "Expand a condensed expression into file names",
	Long: `Expand a condensed expression back into one file name per frame.

Padding defaults to the width of the widest frame number in the
expression; --padding overrides it, and --padding 0 disables leading
zeros entirely.

With --output the list is written to a file instead of stdout; a .gz or
.zst extension compresses it on the way out.

Examples:
  framespec expand "/renders/shot.1-3,5.exr" --padding 4

  framespec expand "shot.1-100000.exr" --output frames.txt.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().IntVarP(&expandPadding, "padding", "p", -1, "zero-padding width (-1 derives it from the expression)")
	expandCmd.Flags().StringVarP(&expandOutput, "output", "o", "", "write the list to a file instead of stdout")
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	c, err := newCodec()
	if err != nil {
		return err
	}

	var padding []int
	if expandPadding >= 0 {
		padding = []int{expandPadding}
	}

	seq, err := c.ExpandFiles(args[0], padding...)
	if err != nil {
		return fmt.Errorf("expanding %q: %w", args[0], err)
	}

	if expandOutput == "" {
		bw := bufio.NewWriter(os.Stdout)
		for p := range seq {
			fmt.Fprintln(bw, p)
		}
		return bw.Flush()
	}

	f, err := os.Create(expandOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	w, err := codec.ForPath(expandOutput).Writer(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("compressing output: %w", err)
	}

	bw := bufio.NewWriter(w)
	for p := range seq {
		fmt.Fprintln(bw, p)
	}
	// The compressing writer must be closed even when the flush fails,
	// and the file's own close error still counts: a short write can
	// otherwise leave a truncated stream that looks complete.
	err = bw.Flush()
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
