package model

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindIO ErrorKind = iota + 1
	KindParse
	KindNegativeBalance
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "IO error"
	case KindParse:
		return "JSON error"
	case KindNegativeBalance:
		return "Negative balance"
	default:
		return "unknown error"
	}
}

// AccountError is the failure taxonomy of loading and validating an account.
// Amount is only meaningful for KindNegativeBalance.
type AccountError struct {
	Kind   ErrorKind
	Amount int64
	Err    error
}

var (
	ErrIO              = &AccountError{Kind: KindIO}
	ErrParse           = &AccountError{Kind: KindParse}
	ErrNegativeBalance = &AccountError{Kind: KindNegativeBalance}
)

// FromIOError converts a failure to open or read the account data.
func FromIOError(err error) *AccountError {
	return &AccountError{Kind: KindIO, Err: err}
}

// FromParseError converts a failure to decode the account data.
func FromParseError(err error) *AccountError {
	return &AccountError{Kind: KindParse, Err: err}
}

func NegativeBalance(amount int64) *AccountError {
	return &AccountError{Kind: KindNegativeBalance, Amount: amount}
}

func (e *AccountError) Error() string {
	if e.Kind == KindNegativeBalance {
		return fmt.Sprintf("%s: %d", e.Kind, e.Amount)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

// Is matches any AccountError of the same kind, so the package sentinels
// work with errors.Is regardless of cause or amount.
func (e *AccountError) Is(target error) bool {
	t, ok := target.(*AccountError)
	return ok && t.Kind == e.Kind
}

// KindOf reports the kind of the first AccountError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var ae *AccountError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}
