package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s, ok := a.session.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s) ", s.Username)
}

// Root prints the banner and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to assessvault (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
