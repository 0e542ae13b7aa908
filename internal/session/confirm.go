package session

import (
	"context"
	"fmt"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/common"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/logging"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/store"
)

// Confirmor is the two-step deletion gate: idle, or pending exactly one
// record identifier. The pending identifier always references a record
// that existed when the request was made.
type Confirmor struct {
	store *store.Store
	log   logging.Logger

	pending int
	armed   bool
}

func NewConfirmor(st *store.Store, log logging.Logger) *Confirmor {
	return &Confirmor{store: st, log: log}
}

// Pending returns the identifier awaiting confirmation, if any.
func (d *Confirmor) Pending() (int, bool) {
	return d.pending, d.armed
}

// Request arms the gate for one record. The identifier must reference
// an existing record.
func (d *Confirmor) Request(id int) error {
	if _, ok := d.store.Get(id); !ok {
		return fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}
	d.pending = id
	d.armed = true
	return nil
}

// Confirm removes the pending record from the store and disarms the
// gate. The removed identifier is returned.
func (d *Confirmor) Confirm(ctx context.Context) (int, error) {
	if !d.armed {
		return 0, common.ErrNoPendingDelete
	}
	id := d.pending
	d.pending = 0
	d.armed = false
	if err := d.store.Remove(id); err != nil {
		return 0, err
	}
	d.log.Info(ctx, "user deleted", "id", id)
	return id, nil
}

// Cancel disarms the gate without touching the record set.
func (d *Confirmor) Cancel() {
	d.pending = 0
	d.armed = false
}
