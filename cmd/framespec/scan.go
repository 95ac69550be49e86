package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sequencekit/framespec/internal/scanner"
)

var (
	scanRegion   string
	scanEndpoint string
)

var scanCmd = &cobra.Command{
	Use:   "scan [source]",
	Short: "Condense every sequence found at a directory or bucket",
	Long: `List the file names at a source and print one condensed expression per
sequence found there. Names that carry no frame number are printed
unchanged.

The source is a local directory, a gs://bucket/prefix, or an
s3://bucket/prefix. Remote listings read object names only; no file
content is transferred.

Examples:
  framespec scan /renders/show/seq010

  framespec scan gs://renders/show/seq010

  framespec scan s3://renders/show/seq010 --region us-east-1`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanRegion, "region", "", "AWS region for s3:// sources")
	scanCmd.Flags().StringVar(&scanEndpoint, "endpoint", "", "custom S3 endpoint (for S3-compatible services)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var s3opts []scanner.S3Option
	if scanRegion != "" {
		s3opts = append(s3opts, scanner.WithRegion(scanRegion))
	}
	if scanEndpoint != "" {
		s3opts = append(s3opts, scanner.WithEndpoint(scanEndpoint))
	}

	lister, err := scanner.ForSource(ctx, args[0], s3opts...)
	if err != nil {
		return err
	}
	defer lister.Close()

	paths, err := lister.List(ctx)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files found at %q", args[0])
	}

	c, err := newCodec()
	if err != nil {
		return err
	}

	groups, err := c.GroupFiles(paths)
	if err != nil {
		return err
	}

	for _, group := range groups {
		condensed, err := c.FilesToCondensed(group)
		if err != nil {
			return fmt.Errorf("condensing sequence starting at %q: %w", group[0], err)
		}
		fmt.Println(condensed)
	}
	return nil
}
