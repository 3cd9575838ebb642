package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore reads one account from an existing database opened read-only.
type SQLiteStore struct {
	db        *sql.DB
	accountID string
}

func NewSQLiteStore(dbPath, accountID string) (*SQLiteStore, error) {
	if accountID == "" {
		return nil, fmt.Errorf("an account id is required to read from %s", dbPath)
	}

	// mode=ro would otherwise surface a missing file as a vague open error.
	if _, err := os.Stat(dbPath); err != nil {
		return nil, model.FromIOError(err)
	}

	db, err := sql.Open("sqlite3", dsn(dbPath, "ro"))
	if err != nil {
		return nil, model.FromIOError(fmt.Errorf("can not open database : %w", err))
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, model.FromIOError(fmt.Errorf("can not connect with database : %w", err))
	}

	return &SQLiteStore{db: db, accountID: accountID}, nil
}

func (s *SQLiteStore) Load() (*model.Account, error) {
	acc := &model.Account{}

	err := s.db.QueryRow("SELECT id FROM accounts WHERE id = ?", s.accountID).Scan(&acc.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.FromIOError(fmt.Errorf("%w: '%s'", ErrAccountNotFound, s.accountID))
		}
		return nil, model.FromIOError(fmt.Errorf("failed to query account '%s' : %w", s.accountID, err))
	}

	rows, err := s.db.Query(`
		SELECT id, amount
		FROM transactions
		WHERE account_id = ?
		ORDER BY position
	`, s.accountID)
	if err != nil {
		return nil, model.FromIOError(fmt.Errorf("failed to query transactions: %w", err))
	}
	defer rows.Close()

	acc.Transactions = []model.Transaction{}
	for rows.Next() {
		var tx model.Transaction
		if err := rows.Scan(&tx.ID, &tx.Amount); err != nil {
			return nil, model.FromParseError(fmt.Errorf("failed to scan transaction: %w", err))
		}
		acc.Transactions = append(acc.Transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, model.FromIOError(fmt.Errorf("failed to read transactions: %w", err))
	}

	return acc, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// dsn builds a SQLite URI for path. The path is escaped so '?' and '#' in a
// file name are not taken as the start of the query or fragment.
func dsn(path, mode string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=" + mode + "&_foreign_keys=on"
}
