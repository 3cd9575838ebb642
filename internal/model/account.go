package model

// Account is a single account record as read from a source.
type Account struct {
	ID           string        `json:"id"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction is a signed movement in the account's smallest unit.
type Transaction struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}
