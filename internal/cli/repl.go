package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can
// provide a lightweight stub.
type execIface interface {
	List(ctx context.Context, term string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, rawID string) error
	Show(ctx context.Context, rawID string) error
	Delete(ctx context.Context, rawID string) error
}

// runREPL starts the read–eval–print loop of the directory CLI.
//
// It reads a line from the provided reader, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Commands:
//
//	help             — show available commands
//	list | l         — list all users
//	search <term>    — list users whose name contains <term>
//	new              — open a create form session
//	edit [id]        — open an edit form session
//	show [id]        — print a single user
//	delete [id]      — remove a user after confirmation
//	exit | quit      — leave the program
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, search <term>, new, edit [id], show [id], delete [id], exit")

		case "l", "list":
			_ = a.List(ctx, "")

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				break
			}
			_ = a.List(ctx, strings.Join(args, " "))

		case "new", "add":
			_ = a.New(ctx)

		case "edit":
			_ = a.Edit(ctx, strings.Join(args, " "))

		case "show":
			_ = a.Show(ctx, strings.Join(args, " "))

		case "delete", "del", "rm":
			_ = a.Delete(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
