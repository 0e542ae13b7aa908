package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/common"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/models"
)

// cancelWord aborts an open form session from any field prompt.
const cancelWord = ":q"

// formFields defines the prompt order of the form.
var formFields = []struct {
	field models.Field
	label string
}{
	{models.FieldName, "Name"},
	{models.FieldEmail, "Email"},
	{models.FieldPhone, "Phone"},
	{models.FieldStreet, "Street"},
	{models.FieldCity, "City"},
	{models.FieldCompanyName, "Company name (optional)"},
	{models.FieldWebsite, "Website (optional)"},
}

// New opens a create session and walks the user through the form.
func (a *App) New(ctx context.Context) error {
	if err := a.forms.BeginCreate(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return a.runForm(ctx)
}

// Edit opens an edit session for the given record and walks the user
// through the form, seeded with the record's current values.
func (a *App) Edit(ctx context.Context, rawID string) error {
	id, err := a.resolveID(rawID, "Enter user id to edit")
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if err := a.forms.BeginEdit(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return a.runForm(ctx)
}

// runForm prompts for every form field, showing the current draft value
// and keeping it on an empty answer. Field errors are shown inline as
// they happen; a blocked submit shows the aggregate message and loops
// back with the entered values retained, so the session stays open
// until it commits or the user cancels.
func (a *App) runForm(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Fill in the form (%s cancels, Enter keeps the shown value)", cancelWord))

	for {
		for _, ff := range formFields {
			current := a.forms.Draft().Get(ff.field)
			label := ff.label
			if current != "" {
				label = fmt.Sprintf("%s [%s]", label, current)
			}

			value, err := GetSimpleText(a.reader, label, a.out)
			if err != nil {
				a.forms.Cancel(ctx)
				return err
			}
			if value == cancelWord {
				a.forms.Cancel(ctx)
				printlnFn("Cancelled.")
				return nil
			}
			if value == "" {
				value = current
			}

			msg, err := a.forms.SetField(ff.field, value)
			if err != nil {
				return err
			}
			if msg != "" {
				printlnFn("  !", msg)
			}
		}

		u, err := a.forms.Submit(ctx)
		if err == nil {
			printlnFn(fmt.Sprintf("Saved user %d (%s)", u.ID, u.Username))
			return nil
		}
		if errors.Is(err, common.ErrValidation) {
			printlnFn("Cannot save:", err.Error())
			continue
		}
		a.forms.Cancel(ctx)
		printlnFn("Error:", err.Error())
		return err
	}
}

// resolveID parses the id from the command arguments, prompting for it
// when none was given.
func (a *App) resolveID(raw, prompt string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		var err error
		raw, err = GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, common.ErrValidation)
	}
	return id, nil
}
