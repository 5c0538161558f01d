package cmd

import (
	"github.com/spf13/cobra"

	"github.com/godwinstewart/lifheader/pkg/app/show"
)

var showCmd = &cobra.Command{
	Use:   "show [input]",
	Short: "Display the LIF header of a file",
	Long: `Decode and display the 32-byte LIF header at the start of a file.

Examples:
  # Show the header of a BASIC program
  lifheader show hangman.lif

  # Read from a pipe and print JSON
  cat hangman.lif | lifheader show --format json`,

	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := newContext(cmd)
	_, svc := newService()

	request := &show.Request{
		InputPath: inputArg(args),
	}
	if err := request.Validate(); err != nil {
		return err
	}

	response, err := show.Handle(ctx, svc, request)
	if err != nil {
		return err
	}

	return show.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
