package main

import (
	"github.com/spf13/cobra"
)

func identityCmd(e *engine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage the local identity",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Generate the identity key pair and store it encrypted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := e.commands.CreateClient(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List registered identities and mark the one on disk",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := e.commands.ListClients(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether an identity exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := e.commands.Status(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
	)

	return cmd
}

func signInCmd(e *engine) *cobra.Command {
	return &cobra.Command{
		Use:   "sign-in",
		Short: "Prove possession of the identity key and issue a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := e.commands.SignIn(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}
