package store

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/model"
)

// Pointer fields tell an absent or null value apart from a zero one. Member
// names match exactly; duplicate names and invalid UTF-8 are decode errors.
type jsonAccount struct {
	ID           *string            `json:"id"`
	Transactions *[]jsonTransaction `json:"transactions"`
}

type jsonTransaction struct {
	ID     *string `json:"id"`
	Amount *int64  `json:"amount"`
}

type JSONSource struct {
	path string
}

func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

func (s *JSONSource) Path() string {
	return s.path
}

func (s *JSONSource) Load() (*model.Account, error) {
	return LoadAccount(s.path)
}

func (s *JSONSource) Close() error {
	return nil
}

// LoadAccount reads the whole file at path and decodes it into an Account.
// Open and read failures are KindIO, anything wrong with the content is
// KindParse.
func LoadAccount(path string) (*model.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.FromIOError(err)
	}

	acc, err := decodeAccount(data)
	if err != nil {
		return nil, model.FromParseError(err)
	}

	return acc, nil
}

func decodeAccount(data []byte) (*model.Account, error) {
	var raw jsonAccount
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if raw.ID == nil {
		return nil, fmt.Errorf("%w `id`", ErrMissingField)
	}
	if raw.Transactions == nil {
		return nil, fmt.Errorf("%w `transactions`", ErrMissingField)
	}

	acc := &model.Account{
		ID:           *raw.ID,
		Transactions: make([]model.Transaction, 0, len(*raw.Transactions)),
	}

	for i, t := range *raw.Transactions {
		if t.ID == nil {
			return nil, fmt.Errorf("transactions[%d]: %w `id`", i, ErrMissingField)
		}
		if t.Amount == nil {
			return nil, fmt.Errorf("transactions[%d]: %w `amount`", i, ErrMissingField)
		}
		acc.Transactions = append(acc.Transactions, model.Transaction{
			ID:     *t.ID,
			Amount: *t.Amount,
		})
	}

	return acc, nil
}
