package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/config"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/logging"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/models"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/session"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/store"
)

// newTestApp builds an App wired to scripted input and discarded
// output. The remote client is left nil: these tests never load.
func newTestApp(input string, users ...models.User) (*App, *store.Store) {
	st := store.New()
	st.Load(users)
	log := logging.NewNop()
	return &App{
		config:    &config.Config{},
		log:       log,
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       io.Discard,
		store:     st,
		forms:     session.NewController(st, log),
		deletions: session.NewConfirmor(st, log),
	}, st
}

func TestNew_CreatesUserFromFormInput(t *testing.T) {
	mutePrintln(t)

	input := strings.Join([]string{
		"Jane Doe",    // name
		"jane@doe.io", // email
		"2025550100",  // phone
		"Main St 1",   // street
		"Springfield", // city
		"",            // company (optional)
		"",            // website (optional)
	}, "\n") + "\n"

	a, st := newTestApp(input, models.User{ID: 1}, models.User{ID: 3}, models.User{ID: 7})

	require.NoError(t, a.New(context.Background()))

	u, ok := st.Get(8)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "USER-jane-doe", u.Username)
	assert.Equal(t, "Springfield", u.Address.City)
	assert.Equal(t, session.StateClosed, a.forms.State())
}

func TestNew_BlockedSubmitKeepsSessionOpenUntilFixed(t *testing.T) {
	mutePrintln(t)

	input := strings.Join([]string{
		// First pass: invalid email blocks the submit.
		"Jane Doe", "bad-email", "2025550100", "Main St 1", "Springfield", "", "",
		// Second pass: blank keeps the value, only the email changes.
		"", "jane@doe.io", "", "", "", "", "",
	}, "\n") + "\n"

	a, st := newTestApp(input)

	require.NoError(t, a.New(context.Background()))

	require.Equal(t, 1, st.Len())
	u, _ := st.Get(1)
	assert.Equal(t, "jane@doe.io", u.Email)
	assert.Equal(t, "Jane Doe", u.Name)
}

func TestNew_CancelDiscardsDraft(t *testing.T) {
	mutePrintln(t)

	a, st := newTestApp("Jane Doe\n:q\n")

	require.NoError(t, a.New(context.Background()))

	assert.Equal(t, 0, st.Len())
	assert.Equal(t, session.StateClosed, a.forms.State())
}

func TestEdit_BlankInputKeepsSeededValues(t *testing.T) {
	mutePrintln(t)

	seeded := models.User{
		ID:      4,
		Name:    "Jane Doe",
		Email:   "jane@doe.io",
		Phone:   "2025550100",
		Address: models.Address{Street: "Main St 1", City: "Springfield"},
	}

	// Keep every field except the street.
	input := strings.Join([]string{"", "", "", "Broadway 7", "", "", ""}, "\n") + "\n"
	a, st := newTestApp(input, seeded)

	require.NoError(t, a.Edit(context.Background(), "4"))

	u, _ := st.Get(4)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "Broadway 7", u.Address.Street)
	assert.Equal(t, "Springfield", u.Address.City)
}

func TestEdit_UnknownIDReported(t *testing.T) {
	mutePrintln(t)

	a, _ := newTestApp("", models.User{ID: 1})

	err := a.Edit(context.Background(), "42")
	assert.Error(t, err)
}

func TestEdit_InvalidIDReported(t *testing.T) {
	mutePrintln(t)

	a, _ := newTestApp("")

	err := a.Edit(context.Background(), "abc")
	assert.Error(t, err)
}

func TestDelete_ConfirmRemovesRecord(t *testing.T) {
	mutePrintln(t)

	a, st := newTestApp("y\n", models.User{ID: 1}, models.User{ID: 5}, models.User{ID: 9})

	require.NoError(t, a.Delete(context.Background(), "5"))

	_, ok := st.Get(5)
	assert.False(t, ok)
	assert.Equal(t, 2, st.Len())
}

func TestDelete_DeclineLeavesRecordSet(t *testing.T) {
	mutePrintln(t)

	a, st := newTestApp("n\n", models.User{ID: 1}, models.User{ID: 5})

	require.NoError(t, a.Delete(context.Background(), "5"))

	assert.Equal(t, 2, st.Len())
	_, armed := a.deletions.Pending()
	assert.False(t, armed)
}

func TestDelete_UnknownIDReported(t *testing.T) {
	mutePrintln(t)

	a, st := newTestApp("", models.User{ID: 1})

	err := a.Delete(context.Background(), "42")
	assert.Error(t, err)
	assert.Equal(t, 1, st.Len())
}

func TestShow_PrintsRecord(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	a, _ := newTestApp("", models.User{
		ID:       2,
		Name:     "Ervin Howell",
		Username: "Antonette",
		Email:    "Shanna@melissa.tv",
	})

	require.NoError(t, a.Show(context.Background(), "2"))

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Ervin Howell")
	assert.Contains(t, joined, "Antonette")
}

func TestList_FiltersByName(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	a, _ := newTestApp("",
		models.User{ID: 1, Name: "Jane"},
		models.User{ID: 2, Name: "Anna"},
		models.User{ID: 3, Name: "Bob"},
	)

	require.NoError(t, a.List(context.Background(), "an"))

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Jane")
	assert.Contains(t, lines[1], "Anna")
}
