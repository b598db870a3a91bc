package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ListAssessments(ctx context.Context) error
	Take(ctx context.Context, args []string) error
	Results(ctx context.Context) error
	Clear(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit"/"quit".
//
//	Not logged in:
//	  - help             show available commands
//	  - register         create an account
//	  - login            authenticate
//	  - assessments      list questionnaires
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - take <n>         answer questionnaire n and save the result
//	  - results          show saved results
//	  - clear            delete saved results
//	  - whoami           show the profile
//	  - logout           end the session
//
// Handlers report their own failures, so only ErrNotLoggedIn is handled here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("av %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: assessments, take <n>, results, clear, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, assessments, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "a", "assessments":
			cmdErr = a.ListAssessments(ctx)

		case "take":
			cmdErr = a.Take(ctx, args)

		case "r", "results":
			cmdErr = a.Results(ctx)

		case "clear":
			cmdErr = a.Clear(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if errors.Is(cmdErr, ErrNotLoggedIn) {
			printlnFn("Please log in first")
		}
	}
}
