package views

import (
	"io"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/constants"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath  string
	Source      string
	InputPath   string
	InputExists bool
	AccountID   string
	LogLevel    string
	MetricsFile string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	inputStatus := pterm.Green("Found")
	if !data.InputExists {
		inputStatus = pterm.Red("Not Found")
	}

	accountID := data.AccountID
	if accountID == "" {
		accountID = "(taken from the file)"
	}

	metricsFile := data.MetricsFile
	if metricsFile == "" {
		metricsFile = "(disabled)"
	}

	pterm.Fprintln(w, ui.L1Title("%s system info", constants.AppName))

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Account Source", data.Source},
		{"Input Path", data.InputPath},
		{"Input Status", inputStatus},
		{"Account ID", accountID},
		{"Log Level", data.LogLevel},
		{"Metrics Textfile", metricsFile},
	}

	return pterm.DefaultTable.WithWriter(w).WithData(tableData).Render()
}
