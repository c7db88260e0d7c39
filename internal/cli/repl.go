package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	IrisLogin(ctx context.Context) error
	Enroll(ctx context.Context) error
	Users(ctx context.Context) error
	ShowUser(ctx context.Context) error
	UpdateUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	IrisRecords(ctx context.Context) error
	Compare(ctx context.Context) error
	Logs(ctx context.Context) error
	Stats(ctx context.Context) error
	Profile(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the irisctl client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current session status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate with email and password
//	  - irislogin      — authenticate with an iris image
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - enroll         — enroll a new user (admin)
//	  - users          — list users (admin)
//	  - user           — show a single user (admin)
//	  - update         — update a user (admin)
//	  - delete         — delete a user (admin)
//	  - iris           — list iris records (admin)
//	  - compare        — compare two iris images
//	  - logs           — authentication history (admin)
//	  - stats          — dashboard statistics (admin)
//	  - profile        — administrator profile (admin)
//	  - whoami         — show the active session
//	  - logout         — end the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("iris> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: enroll, users, user, update, delete, iris, compare, logs, stats, profile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, irislogin, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "irislogin":
			_ = a.IrisLogin(ctx)

		case "enroll":
			_ = a.Enroll(ctx)

		case "users":
			_ = a.Users(ctx)

		case "user":
			_ = a.ShowUser(ctx)

		case "update":
			_ = a.UpdateUser(ctx)

		case "delete":
			_ = a.DeleteUser(ctx)

		case "iris":
			_ = a.IrisRecords(ctx)

		case "compare":
			_ = a.Compare(ctx)

		case "logs":
			_ = a.Logs(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Au revoir !")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
