package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/product-tracker/internal/commands"
	"github.com/MKhiriev/product-tracker/internal/config"
	"github.com/MKhiriev/product-tracker/internal/crypto"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/service"
	"github.com/MKhiriev/product-tracker/internal/store"
	"github.com/MKhiriev/product-tracker/internal/workers"
	"github.com/MKhiriev/product-tracker/models"
)

// engine holds everything a subcommand needs. It is built in the root
// command's PersistentPreRunE and torn down by [cli.Execute].
type engine struct {
	cfg       *config.StructuredConfig
	log       *logger.Logger
	logCloser io.Closer
	vault     crypto.KeyVault
	storages  *store.Storages
	commands  *commands.Commands
}

// cli is the root command together with the engine its subcommands share.
type cli struct {
	root   *cobra.Command
	engine *engine
}

func newCLI(buildInfo models.AppBuildInfo) *cli {
	e := &engine{}
	return &cli{
		root:   newRootCmd(e, buildInfo),
		engine: e,
	}
}

// Execute runs the root command and always tears the engine down, also
// when the command fails (cobra skips post-run hooks on error).
func (c *cli) Execute() (err error) {
	defer func() {
		if closeErr := c.engine.close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	return c.root.Execute()
}

func newRootCmd(e *engine, buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Local identity and session engine of product-tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flagCfg := config.BindFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !needsEngine(cmd) {
			return nil
		}
		return e.open(cmd.Context(), flagCfg)
	}
	root.AddCommand(
		identityCmd(e),
		signInCmd(e),
		sessionCmd(e),
		versionCmd(buildInfo),
	)

	return root
}

const annotationNoEngine = "no-engine"

func needsEngine(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationNoEngine] == "true" {
		return false
	}
	// cobra's generated help and completion commands
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == cobra.ShellCompRequestCmd || c.Name() == "completion" {
			return false
		}
	}
	return true
}

func (e *engine) open(ctx context.Context, flagCfg *config.StructuredConfig) error {
	cfg, err := config.GetStructuredConfig(flagCfg)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	e.cfg = cfg

	e.log, e.logCloser = logger.NewFileLogger("tracker", filepath.Join(cfg.Storage.Files.AppDataDir, "logs"))

	e.vault, err = crypto.NewKeyVault(cfg.App.EncryptionKeyBytes())
	if err != nil {
		e.log.Err(err).Msg("error creating key vault")
		return fmt.Errorf("error creating key vault: %w", err)
	}

	e.storages, err = store.NewStorages(ctx, cfg.Storage, e.log)
	if err != nil {
		e.log.Err(err).Msg("error creating storages")
		return fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(e.storages, e.vault, *cfg, e.log)
	if err != nil {
		e.log.Err(err).Msg("error creating services")
		return fmt.Errorf("error creating services: %w", err)
	}

	workers.NewWorkers(
		workers.NewStagingCleaner(e.storages.Identities, cfg.Storage.Files.LockTimeout, e.log),
	).Run(ctx)

	e.commands = commands.NewCommands(services, e.log)
	return nil
}

// close releases whatever open managed to set up. It is safe to call on a
// partially opened or never opened engine, and more than once.
func (e *engine) close() error {
	var errs []error

	if e.vault != nil {
		e.vault.Destroy()
		e.vault = nil
	}
	if e.storages != nil {
		errs = append(errs, e.storages.Close())
		e.storages = nil
	}
	if e.logCloser != nil {
		errs = append(errs, e.logCloser.Close())
		e.logCloser = nil
	}
	e.commands = nil

	return errors.Join(errs...)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError writes err as a JSON object. Rejected commands print only
// their user-facing message.
func printError(w io.Writer, err error) {
	message := err.Error()

	var cmdErr *commands.CommandError
	if errors.As(err, &cmdErr) {
		message = cmdErr.Message
	}

	_ = printJSON(w, map[string]string{"error": message})
}
