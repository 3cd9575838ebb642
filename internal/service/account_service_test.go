package service

import (
	"errors"
	"io"
	"testing"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/metrics"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/model"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	acc   *model.Account
	err   error
	loads int
}

func (s *stubSource) Load() (*model.Account, error) {
	s.loads++
	return s.acc, s.err
}

func (s *stubSource) Close() error { return nil }

func quietLogger() *pterm.Logger {
	return ui.NewLogger(io.Discard, pterm.LogLevelDisabled)
}

func TestCheck(t *testing.T) {
	src := &stubSource{acc: &model.Account{
		ID: "acct-1",
		Transactions: []model.Transaction{
			{ID: "t1", Amount: 1000},
			{ID: "t2", Amount: 3536},
		},
	}}
	svc := NewService(src, metrics.NewRecorder(quietLogger()), quietLogger())

	report, err := svc.Account.Check()
	require.NoError(t, err)

	assert.Equal(t, "acct-1", report.Account.ID)
	assert.Equal(t, int64(4536), report.Balance)
	assert.Equal(t, 1, src.loads)
}

func TestCheckWithoutMetrics(t *testing.T) {
	src := &stubSource{acc: &model.Account{ID: "acct-1", Transactions: []model.Transaction{}}}
	svc := NewAccountService(src, nil, quietLogger())

	report, err := svc.Check()
	require.NoError(t, err)
	assert.Zero(t, report.Balance)
}

func TestCheckFailures(t *testing.T) {
	tests := []struct {
		name string
		src  *stubSource
		want error
	}{
		{
			name: "load fails",
			src:  &stubSource{err: model.FromIOError(errors.New("no such file"))},
			want: model.ErrIO,
		},
		{
			name: "parse fails",
			src:  &stubSource{err: model.FromParseError(errors.New("bad json"))},
			want: model.ErrParse,
		},
		{
			name: "negative balance",
			src: &stubSource{acc: &model.Account{
				ID: "acct-1",
				Transactions: []model.Transaction{
					{ID: "t1", Amount: 100},
					{ID: "t2", Amount: -200},
				},
			}},
			want: model.ErrNegativeBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAccountService(tt.src, metrics.NewRecorder(quietLogger()), quietLogger())

			report, err := svc.Check()
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStatement(t *testing.T) {
	src := &stubSource{acc: &model.Account{
		ID: "acct-1",
		Transactions: []model.Transaction{
			{ID: "t1", Amount: 300},
			{ID: "t2", Amount: -100},
		},
	}}
	svc := NewAccountService(src, nil, quietLogger())

	stmt, err := svc.Statement()
	require.NoError(t, err)

	assert.Equal(t, int64(200), stmt.Balance)
	assert.Equal(t, []StatementLine{
		{Transaction: model.Transaction{ID: "t1", Amount: 300}, Running: 300},
		{Transaction: model.Transaction{ID: "t2", Amount: -100}, Running: 200},
	}, stmt.Lines)
}

func TestStatementNegativeReturnsNothing(t *testing.T) {
	src := &stubSource{acc: &model.Account{
		ID:           "acct-1",
		Transactions: []model.Transaction{{ID: "t1", Amount: -1}},
	}}
	svc := NewAccountService(src, nil, quietLogger())

	stmt, err := svc.Statement()
	assert.Nil(t, stmt)

	var ae *model.AccountError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, int64(-1), ae.Amount)
}
