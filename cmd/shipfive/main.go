package main

import (
	"errors"
	"fmt"
	"os"

	"shipfive/internal/debug"
	"shipfive/internal/version"
	"shipfive/pkg/app"
	"shipfive/pkg/config"
	"shipfive/pkg/gui"
	"shipfive/pkg/gui/icons"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// cli holds flag values and the per-invocation wiring.
type cli struct {
	stateDir string
	backend  string
	verbose  bool

	settings config.Settings
	logs     *debug.DebugLogger
	logger   *zap.Logger

	// isTerminal is swapped out by tests.
	isTerminal func() bool
}

func newCLI() *cli {
	return &cli{
		logger: zap.NewNop(),
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// setup resolves the state directory, settings and logger. Flags win over
// config.yaml.
func (c *cli) setup(cmd *cobra.Command) error {
	config.SetShipDir(c.stateDir)

	settings, err := config.LoadSettings()
	if cmd.Flags().Changed("backend") {
		settings.Backend = c.backend
		if verr := settings.Validate(); verr != nil {
			return verr
		}
	}
	if c.verbose {
		settings.Debug = true
	}
	c.settings = settings

	c.logs = debug.NewDebugLogger(settings.Debug)
	c.logger = c.logs.Logger()
	if err != nil {
		c.logger.Warn("ignoring config file", zap.Error(err))
	}

	switch settings.NerdFonts {
	case config.NerdFontsOn:
		icons.SetNerdFonts(true)
	case config.NerdFontsOff:
		icons.SetNerdFonts(false)
	}
	return nil
}

func (c *cli) teardown() {
	if c.logs != nil {
		c.logs.Close()
	}
}

// openApp opens storage according to the resolved settings.
func (c *cli) openApp() (*app.App, error) {
	dir, err := config.GetShipDir()
	if err != nil {
		return nil, fmt.Errorf("resolve state directory: %w", err)
	}
	return app.Open(app.Options{
		Backend:  c.settings.Backend,
		StateDir: dir,
		StateKey: c.settings.StateKey,
		Logger:   c.logger,
	}), nil
}

var errNotInteractive = errors.New("shipfive needs an interactive terminal; try 'shipfive status'")

func (c *cli) runTUI() error {
	if !c.isTerminal() {
		return errNotInteractive
	}

	a, err := c.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(gui.NewModel(a.Machine, gui.WithLogger(c.logger)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}
	return nil
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shipfive",
		Short: "Ship in five days - a focused onboarding and Day 1 checklist",
		Long: `shipfive walks you through a short onboarding and the Day 1 checklist
for finishing your Framer template. Progress is remembered between runs.

Run without arguments to start the interactive interface.
Press ? for keybindings once running.`,
		SilenceUsage: true,
		Version:      version.Short(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			c.teardown()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.stateDir, "state-dir", "", "directory for progress, settings and logs (default ~/.shipfive)")
	rootCmd.PersistentFlags().StringVar(&c.backend, "backend", config.BackendFile, "storage backend: file, badger or memory")
	rootCmd.PersistentFlags().BoolVar(&c.verbose, "debug", false, "write debug entries to debug.log")

	rootCmd.AddCommand(
		newStatusCmd(c),
		newResetCmd(c),
		newCheckCmd(c),
		newCompleteCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		os.Exit(1)
	}
}
