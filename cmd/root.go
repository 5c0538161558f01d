package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/godwinstewart/lifheader/pkg/app"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string
	configFile   string

	// Legacy single-command invocation
	action    string
	inputPath string
)

var rootCmd = &cobra.Command{
	Use:   "lifheader",
	Short: "Show, strip or add HP LIF file headers",
	Long: `lifheader manipulates the 32-byte LIF directory entry that HP-71B and
HP-41C tools place in front of a file's contents.

Commands:
  show     Display the LIF header of a file
  strip    Remove the LIF header, leaving the raw payload
  add      Prepend a new LIF header to a raw file
  types    List the file types accepted by add

Input defaults to standard input and output to standard output; "-" selects
them explicitly. The older "--action show|strip|add" form is still accepted.`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	Args:              cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, args)
	},
}

// Execute runs the root command and exits with a status describing the
// first error encountered.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err unless quiet and returns its exit status
func reportError(w io.Writer, err error) int {
	ctx := app.NewContext()
	ctx.Stderr = w
	ctx.Quiet = quiet || settings.Quiet
	ctx.Error(err.Error())
	return ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except results")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./lifheader.yaml)")

	rootCmd.Flags().StringVarP(&action, "action", "a", "", "action to perform: show, strip or add")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (default standard input)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file for strip and add (default standard output)")
	registerAddFlags(rootCmd)
}

// runAction dispatches the legacy --action form to the matching command
func runAction(cmd *cobra.Command, args []string) error {
	switch strings.ToLower(action) {
	case "":
		return app.NewError(app.ErrCodeNoAction, "no action specified, see --help", nil)
	case "show":
		return runShow(cmd, args)
	case "strip":
		return runStrip(cmd, args)
	case "add":
		return runAdd(cmd, args)
	default:
		return app.NewError(app.ErrCodeUnknownAction, fmt.Sprintf("unknown action %q", action), nil)
	}
}

// inputArg returns the input path, taken from --input when given and from
// the optional positional argument otherwise
func inputArg(args []string) string {
	if inputPath != "" {
		return inputPath
	}
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
