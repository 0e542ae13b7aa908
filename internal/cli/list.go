package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/models"
)

// List prints one row per user, optionally filtered by a
// case-insensitive substring match on the display name. The filter is
// recomputed from the live record set on every call.
func (a *App) List(ctx context.Context, term string) error {
	users := a.store.Search(term)
	if len(users) == 0 {
		if term == "" {
			printlnFn("No users loaded.")
		} else {
			printlnFn("No users match " + strconv.Quote(term) + ".")
		}
		return nil
	}
	for _, u := range users {
		printlnFn(formatRow(u))
	}
	return nil
}

func formatRow(u models.User) string {
	return fmt.Sprintf("%4d  %-24s %-30s %s", u.ID, u.Name, u.Email, u.Address.City)
}
