package service

import (
	"github.com/magni-/trm6-ch3-professional-accounting/internal/logic/accounting"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/metrics"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/model"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/store"
	"github.com/pterm/pterm"
)

// Report is the result of a successful check.
type Report struct {
	Account *model.Account
	Balance int64
}

type StatementLine struct {
	Transaction model.Transaction
	Running     int64
}

type Statement struct {
	Report
	Lines []StatementLine
}

type AccountService struct {
	source  store.Source
	metrics *metrics.Recorder
	logger  *pterm.Logger
}

// NewAccountService wires a source to the balance check. rec may be nil.
func NewAccountService(src store.Source, rec *metrics.Recorder, logger *pterm.Logger) *AccountService {
	return &AccountService{source: src, metrics: rec, logger: logger}
}

// Check loads the account and validates its balance. Nothing is returned
// besides the error when either step fails.
func (as *AccountService) Check() (*Report, error) {
	as.logger.Debug("loading account")

	acc, err := as.source.Load()
	if err != nil {
		as.fail(err)
		return nil, err
	}

	as.logger.Debug("account loaded", as.logger.Args(
		"id", acc.ID,
		"transactions", len(acc.Transactions),
	))

	balance, err := accounting.Balance(acc)
	if err != nil {
		as.fail(err)
		return nil, err
	}

	as.logger.Debug("balance computed", as.logger.Args("id", acc.ID, "balance", balance))

	if as.metrics != nil {
		as.metrics.RecordBalance(acc, balance)
	}

	return &Report{Account: acc, Balance: balance}, nil
}

// Statement is Check plus the running balance after every transaction.
func (as *AccountService) Statement() (*Statement, error) {
	report, err := as.Check()
	if err != nil {
		return nil, err
	}

	running := accounting.RunningBalances(report.Account)
	lines := make([]StatementLine, len(report.Account.Transactions))
	for i, t := range report.Account.Transactions {
		lines[i] = StatementLine{Transaction: t, Running: running[i]}
	}

	return &Statement{Report: *report, Lines: lines}, nil
}

func (as *AccountService) fail(err error) {
	as.logger.Debug("account check failed", as.logger.Args("error", err))
	if as.metrics != nil {
		as.metrics.RecordFailure(err)
	}
}
