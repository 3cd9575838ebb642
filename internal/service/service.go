package service

import (
	"github.com/magni-/trm6-ch3-professional-accounting/internal/metrics"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Account *AccountService
}

func NewService(src store.Source, rec *metrics.Recorder, logger *pterm.Logger) *Service {
	return &Service{
		Account: NewAccountService(src, rec, logger),
	}
}
