// Package session implements the create/edit form session and the
// two-step deletion gate over the in-memory store.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/common"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/logging"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/models"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/store"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/validation"
)

// State names the lifecycle phase of the form controller.
type State string

const (
	StateClosed State = "closed"
	StateCreate State = "create"
	StateEdit   State = "edit"
)

// Controller manages at most one open create-or-edit session against
// the shared store. A draft exists exactly while a session is open and
// is discarded on cancel or successful commit.
type Controller struct {
	store *store.Store
	log   logging.Logger

	state     State
	sessionID string // correlation id for log lines of one session
	target    int    // identifier of the record being edited
	draft     models.Draft
	errs      validation.FieldErrors
}

func NewController(st *store.Store, log logging.Logger) *Controller {
	return &Controller{store: st, log: log, state: StateClosed}
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return c.state
}

// Draft returns a copy of the current draft. Meaningful only while a
// session is open.
func (c *Controller) Draft() models.Draft {
	return c.draft
}

// Errors returns the current per-field error record.
func (c *Controller) Errors() validation.FieldErrors {
	return c.errs
}

// BeginCreate opens a create session with a clean draft and no errors.
func (c *Controller) BeginCreate(ctx context.Context) error {
	if c.state != StateClosed {
		return common.ErrSessionOpen
	}
	c.state = StateCreate
	c.sessionID = uuid.NewString()
	c.target = 0
	c.draft = models.Draft{}
	c.errs = validation.FieldErrors{}
	c.log.Debug(ctx, "form session opened", "session", c.sessionID, "mode", string(StateCreate))
	return nil
}

// BeginEdit opens an edit session seeded from the flattened record.
func (c *Controller) BeginEdit(ctx context.Context, id int) error {
	if c.state != StateClosed {
		return common.ErrSessionOpen
	}
	u, ok := c.store.Get(id)
	if !ok {
		return fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}
	c.state = StateEdit
	c.sessionID = uuid.NewString()
	c.target = id
	c.draft = models.Flatten(u)
	c.errs = validation.FieldErrors{}
	c.log.Debug(ctx, "form session opened", "session", c.sessionID, "mode", string(StateEdit), "id", id)
	return nil
}

// SetField stores a new value for one draft field, validates it, and
// records the resulting message in the error record for that field
// only. The message is returned so the caller can show it inline.
func (c *Controller) SetField(f models.Field, value string) (string, error) {
	if c.state == StateClosed {
		return "", common.ErrNoSession
	}
	c.draft.Set(f, value)
	msg := validation.Check(f, value)
	c.errs.Set(f, msg)
	return msg, nil
}

// Cancel discards the open session without touching the record set.
func (c *Controller) Cancel(ctx context.Context) {
	if c.state == StateClosed {
		return
	}
	c.log.Debug(ctx, "form session cancelled", "session", c.sessionID)
	c.close()
}

// Submit commits the open session. Every field of the effective record
// is revalidated, so a required field the user never touched still
// blocks the commit. In edit mode the draft is merged over the stored
// record first, letting an emptied nested field fall back to its prior
// value.
//
// On success the session closes and the resulting record is returned.
// On a validation failure the session stays open, the error record is
// refreshed, and the returned error wraps common.ErrValidation.
func (c *Controller) Submit(ctx context.Context) (models.User, error) {
	var zero models.User

	switch c.state {
	case StateCreate:
		if err := c.guard(c.draft); err != nil {
			return zero, err
		}
		u := c.draft.Synthesize(c.store.NextID())
		if err := c.store.Append(u); err != nil {
			return zero, err
		}
		c.log.Info(ctx, "user created", "session", c.sessionID, "id", u.ID, "username", u.Username)
		c.close()
		return u, nil

	case StateEdit:
		prev, ok := c.store.Get(c.target)
		if !ok {
			return zero, fmt.Errorf("user %d: %w", c.target, common.ErrNotFound)
		}
		merged := c.draft.MergeInto(prev)
		if err := c.guard(models.Flatten(merged)); err != nil {
			return zero, err
		}
		if err := c.store.Update(merged); err != nil {
			return zero, err
		}
		c.log.Info(ctx, "user updated", "session", c.sessionID, "id", merged.ID)
		c.close()
		return merged, nil

	default:
		return zero, common.ErrNoSession
	}
}

// guard recomputes the full error record for the effective draft and
// rejects the submit if anything is wrong.
func (c *Controller) guard(effective models.Draft) error {
	errs := validation.CheckDraft(effective)
	c.errs = errs
	if errs.HasErrors() {
		return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(errs.Messages(), "; "))
	}
	return nil
}

func (c *Controller) close() {
	c.state = StateClosed
	c.sessionID = ""
	c.target = 0
	c.draft = models.Draft{}
	c.errs = validation.FieldErrors{}
}
