package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/product-tracker/models"
)

func sessionCmd(e *engine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect issued sessions",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate [session-json]",
			Short: "Check a session's expiry (reads JSON from stdin without an argument)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				session, err := readSession(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]bool{
					"valid": e.commands.ValidateSession(cmd.Context(), session),
				})
			},
		},
		&cobra.Command{
			Use:   "open <sealed-token>",
			Short: "Verify a sealed session token and print its session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := e.commands.OpenSession(cmd.Context(), strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
	)

	return cmd
}

func readSession(stdin io.Reader, args []string) (models.Session, error) {
	var (
		raw []byte
		err error
	)
	if len(args) == 1 {
		raw = []byte(args[0])
	} else {
		raw, err = io.ReadAll(stdin)
		if err != nil {
			return models.Session{}, fmt.Errorf("error reading session: %w", err)
		}
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}

	return session, nil
}
