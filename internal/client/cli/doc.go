// Package cli provides the interactive taskdeck command-line client.
//
// It wires configuration, the local credential store, API services, and an
// interactive REPL. Typical flow: restore a persisted session, start the
// background token watchdog, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Tasks: list, show, add, complete, change status, delete
//   - Groups: list, show, create, manage members
//   - Profile: view, edit, avatar upload, productivity stats
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
