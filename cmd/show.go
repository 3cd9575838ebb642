package cmd

import (
	"io"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/app"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui/views"
	"github.com/spf13/cobra"
)

type showRunner struct {
	app *app.App
	out io.Writer
}

func NewShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the transactions with their running balance",
		Long: `Show every transaction of the account with the balance after it,
followed by the balance line. Fails like the default command when the
account can't be loaded or its balance is negative.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				runner := &showRunner{app: a, out: cmd.OutOrStdout()}
				return runner.Run()
			})
		},
	}
}

func (r *showRunner) Run() error {
	stmt, err := r.app.Service.Account.Statement()
	if err != nil {
		return err
	}

	items := make([]views.StatementItem, len(stmt.Lines))
	for i, line := range stmt.Lines {
		items[i] = views.StatementItem{
			ID:      line.Transaction.ID,
			Amount:  line.Transaction.Amount,
			Running: line.Running,
		}
	}

	view := views.NewStatementView(r.out, r.app.Config.Display.MinorUnits)
	if err := view.Render(stmt.Account.ID, items); err != nil {
		return err
	}

	views.RenderBalance(r.out, stmt.Account.ID, stmt.Balance)
	return nil
}
