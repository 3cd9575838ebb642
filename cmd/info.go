package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/config"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/constants"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
	out io.Writer
}

func NewInfoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the effective configuration and where the account is read from.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: c.cfg,
				out: cmd.OutOrStdout(),
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	inputPath := r.cfg.Account.File
	accountID := ""
	if strings.EqualFold(r.cfg.Account.Source, constants.SourceSQLite) {
		inputPath = r.cfg.Account.Database
		accountID = r.cfg.Account.ID
	}

	inputExists := false
	if _, err := os.Stat(inputPath); err == nil {
		inputExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:  configPath,
		Source:      r.cfg.Account.Source,
		InputPath:   inputPath,
		InputExists: inputExists,
		AccountID:   accountID,
		LogLevel:    r.cfg.Log.Level,
		MetricsFile: r.cfg.Metrics.Textfile,
	}

	return views.RenderSystemInfo(r.out, items)
}
