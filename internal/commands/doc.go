// Package commands is the boundary between the identity and session
// services and the shell that drives them.
//
// Each exported method corresponds to one user-facing command (create a
// client, sign in, validate a session). Failures are reported as
// [*CommandError] values whose message is safe to show to the user; the
// underlying cause is logged and remains reachable through errors.Is.
package commands
