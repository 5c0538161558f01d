package cmd

import (
	"github.com/spf13/cobra"

	"github.com/godwinstewart/lifheader/pkg/app/strip"
)

// Shared by strip, add and the legacy root form
var outputPath string

var stripCmd = &cobra.Command{
	Use:   "strip [input]",
	Short: "Remove the LIF header, leaving the raw payload",
	Long: `Copy everything after the 32-byte LIF header to the output.

Examples:
  # Extract the payload of a LEX file
  lifheader strip keywait.lif -o keywait.bin

  # Use in a pipeline
  lifheader strip < memo.lif | less`,

	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStrip(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default standard output)")
}

func runStrip(cmd *cobra.Command, args []string) error {
	ctx := newContext(cmd)
	_, svc := newService()

	request := &strip.Request{
		InputPath:  inputArg(args),
		OutputPath: outputPath,
	}
	if err := request.Validate(); err != nil {
		return err
	}

	_, err := strip.Handle(ctx, svc, request)
	return err
}
