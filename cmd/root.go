package cmd

import (
	"fmt"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/app"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/config"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/constants"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/errhandler"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type rootFlags struct {
	cfgFile     string
	file        string
	database    string
	source      string
	accountID   string
	metricsFile string
	verbose     bool
}

// cli carries the resolved configuration from the persistent pre-run to
// whichever command runs.
type cli struct {
	v     *viper.Viper
	flags *rootFlags
	cfg   *config.Config
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := NewRootCmd().Execute(); err != nil {
		errhandler.HandleError(err)
	}
}

func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New(), flags: &rootFlags{}}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "acctbal validates the balance of an account file",
		Long: `acctbal reads an account and its transactions, sums the amounts and
reports the balance. A negative balance is a fatal error.

Without arguments the account is read from ./account.json.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				runner := &checkRunner{app: a, out: cmd.OutOrStdout()}
				return runner.Run()
			})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.cfgFile, "config", "c", "", "set the config file path")
	pf.StringVarP(&c.flags.file, "file", "f", constants.DefaultAccountFile, "account JSON file")
	pf.StringVar(&c.flags.database, "database", constants.DefaultDatabase, "sqlite database file")
	pf.StringVar(&c.flags.source, "source", constants.SourceJSON, "account source (json or sqlite)")
	pf.StringVar(&c.flags.accountID, "account", "", "account id to read from a sqlite source")
	pf.StringVar(&c.flags.metricsFile, "metrics-file", "", "write run metrics to this Prometheus textfile")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable debug logging")

	c.bindFlag(pf.Lookup("file"), "account.file")
	c.bindFlag(pf.Lookup("database"), "account.database")
	c.bindFlag(pf.Lookup("source"), "account.source")
	c.bindFlag(pf.Lookup("account"), "account.id")
	c.bindFlag(pf.Lookup("metrics-file"), "metrics.textfile")

	rootCmd.AddCommand(NewShowCmd(c))
	rootCmd.AddCommand(NewInfoCmd(c))

	return rootCmd
}

func (c *cli) bindFlag(flag *pflag.Flag, key string) {
	// Only errors on a nil flag, which would be a programming error here.
	if err := c.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

func (c *cli) initConfig() error {
	cfg, err := config.Load(c.v, c.flags.cfgFile)
	if err != nil {
		return err
	}

	if c.flags.verbose {
		cfg.Log.Level = "debug"
	}

	if err := validation.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c.cfg = cfg
	return nil
}

func (c *cli) withApp(cmd *cobra.Command, fn func(*app.App) error) error {
	application, cleanup, err := app.NewApp(c.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(application)
}
