package cli

import (
	"context"
	"fmt"
)

// Delete removes a user record behind a two-step gate: the identifier
// is armed first, then the user must confirm before anything is
// removed. Declining leaves the record set untouched.
func (a *App) Delete(ctx context.Context, rawID string) error {
	id, err := a.resolveID(rawID, "Enter user id to delete")
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := a.deletions.Request(id); err != nil {
		printlnFn(fmt.Sprintf("No user with id %d.", id))
		return err
	}

	u, _ := a.store.Get(id)
	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete user %d (%s)?", id, u.Name), a.out)
	if err != nil {
		a.deletions.Cancel()
		return err
	}
	if !ok {
		a.deletions.Cancel()
		printlnFn("Deletion cancelled.")
		return nil
	}

	if _, err := a.deletions.Confirm(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Deleted user %d.", id))
	return nil
}
