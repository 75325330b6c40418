// Command poet ingests corpus lines and assembles rhyming poems from them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/poemfactory/internal/app"
	"github.com/heartmarshall/poemfactory/internal/config"
	"github.com/heartmarshall/poemfactory/pkg/ctxutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// cli carries state shared by subcommands once the root pre-run has loaded it.
type cli struct {
	configPath string
	stderr     io.Writer

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stderr: stderr}

	root := &cobra.Command{
		Use:           "poet",
		Short:         "Assemble rhyming poems from a corpus of found lines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newResetCmd(c),
		newIngestCmd(c),
		newComposeCmd(c),
		newStatsCmd(c),
		newLookupCmd(c),
		newVersionCmd(),
	)
	return root
}

func (c *cli) load(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.log = app.NewLogger(cfg.Log, c.stderr)
	cmd.SetContext(ctxutil.NewRunContext(cmd.Context()))
	return nil
}

// open builds the application for commands that touch the line store.
// Each poet invocation is its own process, so the memory driver would
// start every command empty.
func (c *cli) open(ctx context.Context) (*app.App, error) {
	if c.cfg.Database.Driver == config.DriverMemory {
		return nil, fmt.Errorf("database driver %q does not persist between poet commands; use %q or %q",
			config.DriverMemory, config.DriverSQLite, config.DriverPostgres)
	}
	return app.New(ctx, c.cfg, c.log)
}
