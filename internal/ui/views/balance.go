package views

import (
	"fmt"
	"io"
)

func BalanceLine(accountID string, balance int64) string {
	return fmt.Sprintf("Balance of account %s is %d", accountID, balance)
}

// RenderBalance prints the single result line verbatim. pterm printers would
// interpret color tags inside the account id, so plain fmt is used here.
func RenderBalance(w io.Writer, accountID string, balance int64) {
	fmt.Fprintln(w, BalanceLine(accountID, balance))
}
