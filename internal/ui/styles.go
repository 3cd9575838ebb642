package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func L1Title(format string, a ...interface{}) string {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	return style.Sprint(fmt.Sprintf(" %s   ", text))
}

func L2Title(format string, a ...interface{}) string {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	return style.Sprint(fmt.Sprintf("# %s   ", text))
}
