package cli

import (
	"context"
	"fmt"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/common"
)

// Show prints all fields of a single user record.
func (a *App) Show(ctx context.Context, rawID string) error {
	id, err := a.resolveID(rawID, "Enter user id to show")
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	u, ok := a.store.Get(id)
	if !ok {
		printlnFn(fmt.Sprintf("No user with id %d.", id))
		return fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}

	printlnFn(fmt.Sprintf("Id:       %d", u.ID))
	printlnFn(fmt.Sprintf("Name:     %s", u.Name))
	printlnFn(fmt.Sprintf("Username: %s", u.Username))
	printlnFn(fmt.Sprintf("Email:    %s", u.Email))
	printlnFn(fmt.Sprintf("Phone:    %s", u.Phone))
	printlnFn(fmt.Sprintf("Street:   %s", u.Address.Street))
	printlnFn(fmt.Sprintf("City:     %s", u.Address.City))
	printlnFn(fmt.Sprintf("Company:  %s", u.Company.Name))
	printlnFn(fmt.Sprintf("Website:  %s", u.Website))
	return nil
}
