// Command transferctl manages the student and approval tables from a
// terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/transferdesk/internal/bootstrap"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/filestorage"
)

// app carries what every subcommand needs. Tests fill services directly.
type app struct {
	configPath string
	services   *bootstrap.Services
	store      docstore.Store
	in         io.Reader
	out        io.Writer
}

func (a *app) open(ctx context.Context) error {
	if a.services != nil {
		return nil
	}

	bootstrap.LogOutput = os.Stderr
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(a.configPath)
	if err != nil {
		return err
	}

	store, err := bootstrap.SetupStore(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	blobs, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, "")
	if err != nil {
		store.Close()
		return err
	}

	_, services := bootstrap.BuildServices(cfg, store, blobs, lgr)
	a.services = &services
	a.store = store
	return nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
		a.store = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "transferctl",
		Short:         "Manage transfer desk records",
		Long:          "transferctl lists and deletes students and dean approvals stored by the transfer desk.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "configs/config.yaml", "Path to the YAML configuration file")

	root.AddCommand(newStudentsCmd(a))
	root.AddCommand(newApprovalsCmd(a))
	root.AddCommand(newCollegesCmd(a))
	return root
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout}
	root := newRootCmd(a)
	if err := root.ExecuteContext(context.Background()); err != nil {
		a.close()
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}
