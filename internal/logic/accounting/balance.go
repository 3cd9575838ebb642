package accounting

import "github.com/magni-/trm6-ch3-professional-accounting/internal/model"

// Balance sums the transaction amounts from left to right starting at 0.
// The addition is plain int64 arithmetic, so a sum past the int64 range
// wraps around instead of failing.
func Balance(acc *model.Account) (int64, error) {
	var balance int64
	for _, t := range acc.Transactions {
		balance += t.Amount
	}

	if balance < 0 {
		return 0, model.NegativeBalance(balance)
	}

	return balance, nil
}

// RunningBalances returns the balance after each transaction, using the same
// arithmetic as Balance.
func RunningBalances(acc *model.Account) []int64 {
	running := make([]int64, len(acc.Transactions))

	var balance int64
	for i, t := range acc.Transactions {
		balance += t.Amount
		running[i] = balance
	}

	return running
}
