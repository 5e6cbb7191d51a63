package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/mercerclayton/banking-system/internal/logging"
	"github.com/mercerclayton/banking-system/internal/service"
)

// accounts is the part of the account service the console drives.
//
//go:generate mockery --name accounts --inpackage --testonly
type accounts interface {
	OpenAccount(ctx context.Context) (*service.Account, error)
	Authenticate(ctx context.Context, number, pin string) (bool, error)
	GetBalance(ctx context.Context, number string) (int64, bool, error)
	UpdateBalance(ctx context.Context, number string, delta int64) error
	AccountExists(ctx context.Context, number string) (bool, error)
	Transfer(ctx context.Context, sender, receiver string, amount int64) (bool, error)
	DeleteAccount(ctx context.Context, number string) error
}

// Console runs the interactive menus over a line-oriented reader and writer.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	accounts accounts
	logger   *logrus.Logger
}

func New(in io.Reader, out io.Writer, accounts accounts, logger *logrus.Logger) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		accounts: accounts,
		logger:   logger,
	}
}

// errInputClosed ends the session when the input runs out.
var errInputClosed = errors.New("console: input closed")

// Run shows the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	session := logging.NewLogData(c.logger)
	if id, err := uuid.NewV4(); err == nil {
		session.AddData("sessionID", id.String())
	}
	ctx = logging.WithLogData(ctx, session)
	session.Log().Info("Console.Run.Start")

	err := c.mainLoop(ctx)
	if errors.Is(err, errInputClosed) {
		err = nil
	}

	c.printf("Bye!\n")
	if err != nil {
		session.Log().WithError(err).Error("Console.Run.Error")
		return err
	}
	session.Log().Info("Console.Run.Complete")
	return nil
}

func (c *Console) mainLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("1. Create an account\n2. Log into account\n0. Exit\n")
		choice, err := c.prompt("> ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			c.createAccount(ctx)
		case "2":
			exit, err := c.login(ctx)
			if err != nil {
				return err
			}
			if exit {
				return nil
			}
		case "0":
			return nil
		default:
			c.printf("Invalid selection.\n\n")
		}
	}
}

func (c *Console) createAccount(ctx context.Context) {
	account, err := c.accounts.OpenAccount(ctx)
	if err != nil {
		c.reportFailure(err)
		return
	}

	c.printf("\nYour card has been created\n")
	c.printf("Your card number:\n%s\n", account.Number)
	c.printf("Your card PIN:\n%s\n\n", account.Pin)
}

// login returns exit=true when the user chose Exit from the account menu.
func (c *Console) login(ctx context.Context) (bool, error) {
	number, err := c.prompt("\nEnter your card number:\n> ")
	if err != nil {
		return false, err
	}
	pin, err := c.prompt("Enter your PIN:\n> ")
	if err != nil {
		return false, err
	}

	ok, err := c.accounts.Authenticate(ctx, number, pin)
	if err != nil {
		c.reportFailure(err)
		return false, nil
	}
	if !ok {
		c.printf("\nWrong card number or PIN!\n\n")
		return false, nil
	}

	c.printf("\nYou have successfully logged in!\n\n")
	return c.accountLoop(ctx, number)
}

func (c *Console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// prompt prints text and reads one trimmed line.
func (c *Console) prompt(text string) (string, error) {
	c.printf("%s", text)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// reportFailure tells the user an operation failed and keeps the session alive. The
// service has already logged the details.
func (c *Console) reportFailure(err error) {
	switch {
	case errors.Is(err, service.ErrBalanceOutOfRange):
		c.printf("Invalid amount.\n\n")
	case errors.Is(err, service.ErrValidation):
		c.printf("Invalid input.\n\n")
	case errors.Is(err, service.ErrNotFound):
		c.printf("Such a card does not exist.\n\n")
	default:
		c.printf("Something went wrong, please try again.\n\n")
	}
}
