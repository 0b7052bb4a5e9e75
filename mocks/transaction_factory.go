package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rentalworks/erp-backend/repositories"
)

type TransactionFactory struct {
	mock.Mock
	TxMock *Executor
}

func (t *TransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	args := t.Called(ctx, fn)
	err := fn(t.TxMock)
	if err != nil {
		return err
	}
	return args.Error(0)
}
