package cmd

import (
	"io"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/app"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui/views"
)

type checkRunner struct {
	app *app.App
	out io.Writer
}

func (r *checkRunner) Run() error {
	report, err := r.app.Service.Account.Check()
	if err != nil {
		return err
	}

	views.RenderBalance(r.out, report.Account.ID, report.Balance)
	return nil
}
