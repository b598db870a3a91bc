// Package cli provides the interactive assessvault command-line client.
//
// It wires configuration, the local database, the account and record
// services and a small REPL. The CLI owns the single session slot; every
// record operation reads the session once and passes its key material to
// the record service explicitly.
//
// Commands:
//   - register / login / logout / whoami
//   - assessments: list the questionnaires
//   - take <n>: answer questionnaire n and store the encrypted result
//   - results: decrypt and show stored results
//   - clear: delete all stored results of the current user
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
