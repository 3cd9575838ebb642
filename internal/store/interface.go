package store

import "github.com/magni-/trm6-ch3-professional-accounting/internal/model"

// Source loads the account to be validated. Implementations read once and
// never write.
type Source interface {
	Load() (*model.Account, error)
	Close() error
}
