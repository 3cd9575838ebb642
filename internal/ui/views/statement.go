package views

import (
	"fmt"
	"io"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/utils"
	"github.com/pterm/pterm"
)

type StatementItem struct {
	ID      string
	Amount  int64
	Running int64
}

type StatementView struct {
	w          io.Writer
	minorUnits int32
}

func NewStatementView(w io.Writer, minorUnits int32) *StatementView {
	return &StatementView{w: w, minorUnits: minorUnits}
}

func (v *StatementView) Render(accountID string, items []StatementItem) error {
	fmt.Fprintln(v.w, ui.L2Title("Account %s", accountID))

	if len(items) == 0 {
		pterm.Warning.WithWriter(v.w).Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"#", "Transaction", "Amount", "Balance"},
	}

	for i, item := range items {
		amount := utils.FormatMinorUnits(item.Amount, v.minorUnits)
		if item.Amount < 0 {
			amount = pterm.Red(amount)
		} else {
			amount = pterm.Green(amount)
		}

		tableData = append(tableData, []string{
			pterm.Sprint(i + 1),
			item.ID,
			amount,
			utils.FormatMinorUnits(item.Running, v.minorUnits),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(v.w, table)

	pterm.Info.WithWriter(v.w).Printf("Total: %d transactions\n", len(items))
	return nil
}
