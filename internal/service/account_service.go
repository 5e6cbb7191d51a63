package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mercerclayton/banking-system/internal/cardnumber"
	"github.com/mercerclayton/banking-system/internal/logging"
	"github.com/mercerclayton/banking-system/internal/operator/actions"
)

const defaultMaxGenerateAttempts = 10

// AccountService handles account business logic. Reads go straight to storage; every
// write goes through the operator so it runs as one transaction.
type AccountService struct {
	cards               cardReader
	operator            actionProcessor
	generator           numberGenerator
	logger              *logrus.Logger
	maxGenerateAttempts int
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	cards cardReader,
	operator actionProcessor,
	generator numberGenerator,
	logger *logrus.Logger,
	maxGenerateAttempts int,
) *AccountService {
	if maxGenerateAttempts < 1 {
		maxGenerateAttempts = defaultMaxGenerateAttempts
	}
	return &AccountService{
		cards:               cards,
		operator:            operator,
		generator:           generator,
		logger:              logger,
		maxGenerateAttempts: maxGenerateAttempts,
	}
}

// OpenAccount mints a number and PIN and stores a new account with a zero balance.
// A generated number that is already taken is replaced, up to the configured attempts.
func (s *AccountService) OpenAccount(ctx context.Context) (*Account, error) {
	var account *Account

	err := logging.Operation(ctx, "OpenAccount", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		for attempt := 1; attempt <= s.maxGenerateAttempts; attempt++ {
			number := s.generator.GenerateAccountNumber()
			pin := s.generator.GeneratePin()

			err := s.operator.Process(ctx, &actions.CreateCard{Number: number, Pin: pin})
			if errors.Is(err, ErrDuplicateKey) {
				logData.Log().WithField("attempt", attempt).Warn("AccountService.OpenAccount.collision")
				continue
			}
			if err != nil {
				return err
			}

			logData.AddData("number", number)
			logData.AddData("attempts", attempt)
			account = &Account{Number: number, Pin: pin}
			return nil
		}
		return fmt.Errorf("open account: no free number after %d attempts: %w", s.maxGenerateAttempts, ErrDuplicateKey)
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// InsertAccount stores a new account with a zero balance.
func (s *AccountService) InsertAccount(ctx context.Context, number, pin string) error {
	return logging.Operation(ctx, "InsertAccount", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("number", number)

		if !cardnumber.Valid(number) {
			return fmt.Errorf("%w: card number %q fails the Luhn check", ErrValidation, number)
		}
		if !cardnumber.ValidPin(pin) {
			return fmt.Errorf("%w: PIN must be %d digits", ErrValidation, cardnumber.PinLength)
		}

		return s.operator.Process(ctx, &actions.CreateCard{Number: number, Pin: pin})
	})
}

// GetPin returns the stored PIN. found is false when no such account exists.
func (s *AccountService) GetPin(ctx context.Context, number string) (pin string, found bool, err error) {
	err = logging.Operation(ctx, "GetPin", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("number", number)

		stored, err := s.cards.FindPin(ctx, number)
		if errors.Is(err, ErrNotFound) {
			logData.AddData("found", false)
			return nil
		}
		if err != nil {
			return err
		}

		pin, found = stored, true
		logData.AddData("found", true)
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return pin, found, nil
}

// Authenticate reports whether pin matches the account's PIN. Unknown numbers never match.
func (s *AccountService) Authenticate(ctx context.Context, number, pin string) (bool, error) {
	var matched bool

	err := logging.Operation(ctx, "Authenticate", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("number", number)

		row, err := s.cards.FindByNumber(ctx, number)
		if errors.Is(err, ErrNotFound) {
			logData.AddData("found", false)
			return nil
		}
		if err != nil {
			return err
		}

		matched = row.Pin == pin
		logData.AddData("found", true)
		logData.AddData("matched", matched)
		return nil
	})
	if err != nil {
		return false, err
	}
	return matched, nil
}

// GetBalance returns the balance. found is false when no such account exists.
func (s *AccountService) GetBalance(ctx context.Context, number string) (balance int64, found bool, err error) {
	err = logging.Operation(ctx, "GetBalance", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("number", number)

		stored, err := s.cards.FindBalance(ctx, number)
		if errors.Is(err, ErrNotFound) {
			logData.AddData("found", false)
			return nil
		}
		if err != nil {
			return err
		}

		balance, found = stored, true
		logData.AddData("found", true)
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return balance, found, nil
}

// UpdateBalance adds delta to the balance. It does not check the sign of delta or of the
// result; callers depositing income pass non-negative amounts. Unknown numbers yield
// ErrNotFound, and a sum past the int64 range yields ErrValidation with nothing changed.
func (s *AccountService) UpdateBalance(ctx context.Context, number string, delta int64) error {
	return logging.Operation(ctx, "UpdateBalance", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("number", number)
		logData.AddData("delta", delta)

		return rejectOutOfRange(s.operator.Process(ctx, &actions.Deposit{Number: number, Delta: delta}))
	})
}

// Transfer moves amount from sender to receiver in one transaction. It returns false,
// changing nothing, when the sender is missing or its balance is below amount. A missing
// receiver yields ErrNotFound, and a receiver balance that would leave the int64 range
// yields ErrValidation; either way the debit is rolled back.
func (s *AccountService) Transfer(ctx context.Context, sender, receiver string, amount int64) (bool, error) {
	var completed bool

	err := logging.Operation(ctx, "Transfer", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("sender", sender)
		logData.AddData("receiver", receiver)
		logData.AddData("amount", amount)

		if amount < 0 {
			return fmt.Errorf("%w: transfer amount must not be negative", ErrValidation)
		}
		if sender == receiver {
			return fmt.Errorf("%w: cannot transfer to the same account", ErrValidation)
		}

		action := &actions.Transfer{Sender: sender, Receiver: receiver, Amount: amount}
		if err := s.operator.Process(ctx, action); err != nil {
			return rejectOutOfRange(err)
		}

		completed = !action.Declined
		logData.AddData("completed", completed)
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// DeleteAccount removes the account. Deleting an unknown number is not an error.
func (s *AccountService) DeleteAccount(ctx context.Context, number string) error {
	return logging.Operation(ctx, "DeleteAccount", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("number", number)

		action := &actions.CloseCard{Number: number}
		if err := s.operator.Process(ctx, action); err != nil {
			return err
		}

		logData.AddData("existed", action.Existed)
		return nil
	})
}

// AccountExists reports whether an account with number exists.
func (s *AccountService) AccountExists(ctx context.Context, number string) (bool, error) {
	var exists bool

	err := logging.Operation(ctx, "AccountExists", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("number", number)

		found, err := s.cards.Exists(ctx, number)
		if err != nil {
			return err
		}

		exists = found
		logData.AddData("exists", exists)
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}
