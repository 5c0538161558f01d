package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/godwinstewart/lifheader/internal/config"
	"github.com/godwinstewart/lifheader/internal/managers/filetypes"
	"github.com/godwinstewart/lifheader/internal/services"
	"github.com/godwinstewart/lifheader/pkg/app"
)

// settings holds the merged configuration for the running command
var settings = &config.Config{}

// flagKeys maps command-line flags onto configuration keys
var flagKeys = map[string]string{
	"format":  "output_format",
	"verbose": "verbose",
	"quiet":   "quiet",
	"type":    "default_type",
}

// loadSettings reads the config file and environment, then lets any flag
// given on the command line override them
func loadSettings(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	bindFlags(v, cmd.Flags())

	cfg, err := config.LoadConfig(v, configFile)
	if err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "could not load configuration", err)
	}
	settings = cfg
	return nil
}

// bindFlags binds the known flags of a command to their configuration keys
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})
}

// newContext builds the application context for a command
func newContext(cmd *cobra.Command) *app.Context {
	ctx := app.NewContext()
	ctx.OutputFormat = settings.OutputFormat
	ctx.Verbose = settings.Verbose
	ctx.Quiet = settings.Quiet
	ctx.Stdout = cmd.OutOrStdout()
	ctx.Stderr = cmd.ErrOrStderr()
	ctx.Stdin = cmd.InOrStdin()
	return ctx
}

// newService wires the file type registry into a LIF service
func newService() (*filetypes.StaticFileTypeRegistry, services.LifService) {
	registry := filetypes.NewStaticFileTypeRegistry()
	return registry, services.NewLifService(registry, settings.BufferSize)
}
