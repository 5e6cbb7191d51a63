package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/mercerclayton/banking-system/internal/cardnumber"
	"github.com/mercerclayton/banking-system/internal/service"
)

// accountLoop serves a logged-in card. It returns exit=true when the user chose Exit.
func (c *Console) accountLoop(ctx context.Context, number string) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		c.printf("1. Balance\n2. Add income\n3. Do transfer\n4. Close account\n5. Log out\n0. Exit\n")
		choice, err := c.prompt("> ")
		if err != nil {
			return false, err
		}

		switch choice {
		case "1":
			c.showBalance(ctx, number)
		case "2":
			if err := c.addIncome(ctx, number); err != nil {
				return false, err
			}
		case "3":
			if err := c.transfer(ctx, number); err != nil {
				return false, err
			}
		case "4":
			if err := c.accounts.DeleteAccount(ctx, number); err != nil {
				c.reportFailure(err)
				continue
			}
			c.printf("The account has been closed!\n\n")
			return false, nil
		case "5":
			c.printf("You have successfully logged out!\n\n")
			return false, nil
		case "0":
			return true, nil
		default:
			c.printf("Invalid selection.\n\n")
		}
	}
}

func (c *Console) showBalance(ctx context.Context, number string) {
	balance, found, err := c.accounts.GetBalance(ctx, number)
	if err != nil {
		c.reportFailure(err)
		return
	}
	if !found {
		c.printf("Such a card does not exist.\n\n")
		return
	}
	c.printf("\nBalance: %d\n\n", balance)
}

func (c *Console) addIncome(ctx context.Context, number string) error {
	text, err := c.prompt("\nEnter income:\n> ")
	if err != nil {
		return err
	}

	income, ok := parseAmount(text)
	if !ok {
		c.printf("Invalid amount.\n\n")
		return nil
	}

	if err := c.accounts.UpdateBalance(ctx, number, income); err != nil {
		c.reportFailure(err)
		return nil
	}
	c.printf("Income was added!\n\n")
	return nil
}

func (c *Console) transfer(ctx context.Context, sender string) error {
	receiver, err := c.prompt("\nEnter card number:\n> ")
	if err != nil {
		return err
	}

	if receiver == sender {
		c.printf("You can't transfer money to the same account!\n\n")
		return nil
	}
	if !cardnumber.Valid(receiver) {
		c.printf("Probably you made a mistake in the card number. Please try again!\n\n")
		return nil
	}

	exists, err := c.accounts.AccountExists(ctx, receiver)
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	if !exists {
		c.printf("Such a card does not exist.\n\n")
		return nil
	}

	text, err := c.prompt("Enter how much money you want to transfer:\n> ")
	if err != nil {
		return err
	}
	amount, ok := parseAmount(text)
	if !ok {
		c.printf("Invalid amount.\n\n")
		return nil
	}

	success, err := c.accounts.Transfer(ctx, sender, receiver, amount)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.printf("Such a card does not exist.\n\n")
	case err != nil:
		c.reportFailure(err)
	case success:
		c.printf("Success!\n\n")
	default:
		c.printf("Not enough money!\n\n")
	}
	return nil
}

// parseAmount accepts a non-negative whole number of currency units.
func parseAmount(text string) (int64, bool) {
	amount, err := strconv.ParseInt(text, 10, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}
