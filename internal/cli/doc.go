// Package cli provides the interactive irisctl command-line client.
//
// It wires configuration, the local session database, the REST API services
// and an interactive REPL. Typical flow: authenticate with a password or an
// iris image, then administer users, iris records and authentication logs.
//
// Key features:
//   - Login with email/password or an iris image
//   - Enroll new users through a guided wizard (file upload or camera)
//   - List / show / update / delete users
//   - Inspect iris records, compare two images, review auth logs and stats
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
