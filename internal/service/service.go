package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mercerclayton/banking-system/internal/config"
	"github.com/mercerclayton/banking-system/internal/operator/actions"
	"github.com/mercerclayton/banking-system/internal/storage"
	"github.com/mercerclayton/banking-system/internal/storage/card"
)

// cardReader is the read side of the card table.
//
//go:generate mockery --name cardReader --inpackage --testonly
type cardReader interface {
	FindByNumber(ctx context.Context, number string) (*card.Card, error)
	FindPin(ctx context.Context, number string) (string, error)
	FindBalance(ctx context.Context, number string) (int64, error)
	Exists(ctx context.Context, number string) (bool, error)
}

// actionProcessor runs write actions one transaction each.
//
//go:generate mockery --name actionProcessor --inpackage --testonly
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// numberGenerator mints card numbers and PINs.
//
//go:generate mockery --name numberGenerator --inpackage --testonly
type numberGenerator interface {
	GenerateAccountNumber() string
	GeneratePin() string
}

// Service holds all business logic services.
type Service struct {
	Account *AccountService
}

// NewService creates a new Service reading from store and writing through processor.
func NewService(
	store *storage.Storage,
	processor actionProcessor,
	generator numberGenerator,
	logger *logrus.Logger,
	cardConfig config.CardConfig,
) *Service {
	return &Service{
		Account: NewAccountService(store.Read().Cards, processor, generator, logger, cardConfig.MaxGenerateAttempts),
	}
}
