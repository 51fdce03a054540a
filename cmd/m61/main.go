// Command m61 exercises the GF(2^61 - 1) field and the m61 Montgomery curve
// from the command line.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/yelhousni/montgomery-m61/internal/logging"
)

const envPrefix = "M61"

// app carries the configuration and logger shared by the subcommands.
type app struct {
	config *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{config: viper.New(), logger: zap.NewNop()}

	// For environment variables.
	a.config.SetEnvPrefix(envPrefix)
	a.config.AutomaticEnv()
	a.config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	rootCmd := &cobra.Command{
		Use:           "m61",
		Short:         "Field and Montgomery-ladder arithmetic over GF(2^61 - 1)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bindFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			logger, err := logging.New(logging.Config{
				Level:  a.config.GetString("logging.level"),
				Format: a.config.GetString("logging.format"),
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "logging level (debug, info, warn, error)")
	flags.String("log-format", logging.LOGFMT, "logging format (logfmt, json, console)")
	flags.StringP("format", "f", formatDecimal, "output format for field elements (decimal, limbs, binary)")

	rootCmd.AddCommand(a.paramsCmd())
	rootCmd.AddCommand(a.fieldCmd())
	rootCmd.AddCommand(a.ladderCmd())
	rootCmd.AddCommand(a.demoCmd())

	return rootCmd
}

// flagKeys maps configuration keys to the persistent flags that set them.
var flagKeys = map[string]string{
	"logging.level":  "log-level",
	"logging.format": "log-format",
	"output.format":  "format",
}

func (a *app) bindFlags(flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			return errors.Errorf("binding flag --%s: flag not defined", name)
		}
		if err := a.config.BindPFlag(key, flag); err != nil {
			return errors.WithMessagef(err, "binding flag --%s", name)
		}
	}
	return nil
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
