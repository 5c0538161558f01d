package cmd

import (
	"github.com/spf13/cobra"

	"github.com/godwinstewart/lifheader/pkg/app/typelist"
)

var listAllTypes bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the file types accepted by add",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTypes(cmd)
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().BoolVar(&listAllTypes, "all", false, "include every registered type id, not just one per mnemonic")
}

func runTypes(cmd *cobra.Command) error {
	ctx := newContext(cmd)
	registry, _ := newService()

	response, err := typelist.Handle(ctx, registry, &typelist.Request{All: listAllTypes})
	if err != nil {
		return err
	}

	return typelist.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
