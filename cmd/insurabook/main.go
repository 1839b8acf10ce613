package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/insurabook"
	"github.com/smileynet/insurabook/internal/command"
	"github.com/smileynet/insurabook/internal/config"
	"github.com/smileynet/insurabook/internal/contact"
	"github.com/smileynet/insurabook/internal/logging"
	"github.com/smileynet/insurabook/internal/shell"
	"github.com/smileynet/insurabook/internal/storage"
	"github.com/smileynet/insurabook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// localSamplesDir holds project-local sample overrides, checked before the
// embedded samples.
const localSamplesDir = ".insurabook/samples"

// errCommandFailed reports that at least one exec line was rejected.
var errCommandFailed = errors.New("one or more commands failed")

// CLI is the top-level command structure for insurabook.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"1" help:"Open the interactive contact shell."`
	Exec    ExecCmd          `cmd:"" help:"Run command lines from arguments or stdin."`
	Seed    SeedCmd          `cmd:"" help:"Write the sample contacts to the data file."`
}

// ShellCmd opens the interactive shell.
type ShellCmd struct {
	File  string `help:"Contact data file (overrides config)." short:"f" type:"path"`
	Plain bool   `help:"Force the plain line shell even if stdout is a TTY." default:"false"`
}

// ExecCmd runs command lines non-interactively.
type ExecCmd struct {
	Lines []string `arg:"" optional:"" help:"Command lines to run, each quoted. Reads stdin when omitted."`
	File  string   `help:"Contact data file (overrides config)." short:"f" type:"path"`
}

// SeedCmd writes the sample contacts.
type SeedCmd struct {
	File  string `help:"Contact data file (overrides config)." short:"f" type:"path"`
	Force bool   `help:"Overwrite an existing data file." default:"false"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig(file string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/insurabook/config.yaml"),
		".insurabook/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if file != "" {
		cfg.Data.File = file
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// samples returns the sample filesystem, local overrides first.
func samples() fs.FS {
	return insurabook.OverlayFS(localSamplesDir, insurabook.Samples)
}

// openSession builds the logger and loads the book described by cfg.
// The returned cleanup flushes the logger.
func openSession(cfg *config.Config) (*shell.Session, func(), error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = logger.Sync() }

	var seed fs.FS
	if cfg.Data.SeedSamples {
		seed = samples()
	}
	sess, err := shell.Open(storage.NewFileStore(cfg.Data.File), seed, shell.WithLogger(logger))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Info("session started", zap.String("data_file", cfg.Data.File), zap.Int("contacts", sess.Len()))
	return sess, cleanup, nil
}

// Run executes the shell command.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig(s.File)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	sess, cleanup, err := openSession(cfg)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := tui.NewRunner(sess, tui.RunnerOptions{ForcePlain: s.Plain || cfg.UI.Plain})
	return runner.Run(ctx)
}

// Run executes the exec command.
func (e *ExecCmd) Run() error {
	cfg, err := loadConfig(e.File)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	sess, cleanup, err := openSession(cfg)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return e.run(ctx, os.Stdin, os.Stdout, sess)
}

// failureCounter counts rejected lines while passing everything through.
type failureCounter struct {
	tui.Executor
	failed int
}

func (f *failureCounter) Execute(line string) (command.Result, error) {
	res, err := f.Executor.Execute(line)
	if err != nil {
		f.failed++
	}
	return res, err
}

// run executes the argument lines, or stdin when there are none, through the
// plain line shell. Any rejected line makes the whole run fail.
func (e *ExecCmd) run(ctx context.Context, stdin io.Reader, w io.Writer, exec tui.Executor) error {
	in := stdin
	if len(e.Lines) > 0 {
		in = strings.NewReader(strings.Join(e.Lines, "\n"))
	}

	counter := &failureCounter{Executor: exec}
	runner := tui.NewRunner(counter, tui.RunnerOptions{Reader: in, Writer: w, ForcePlain: true})
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	if counter.failed > 0 {
		return fmt.Errorf("exec: %d rejected: %w", counter.failed, errCommandFailed)
	}
	return nil
}

// Run executes the seed command.
func (c *SeedCmd) Run() error {
	cfg, err := loadConfig(c.File)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return c.run(os.Stdout, storage.NewFileStore(cfg.Data.File), samples())
}

// seedStore abstracts the contact file for testing.
type seedStore interface {
	Load() ([]contact.Contact, bool, error)
	Save(contacts []contact.Contact) error
	Path() string
}

// run writes the sample contacts to store, refusing to replace existing data
// unless Force is set.
func (c *SeedCmd) run(w io.Writer, store seedStore, fsys fs.FS) error {
	if !c.Force {
		_, found, err := store.Load()
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if found {
			return fmt.Errorf("seed: %s already exists (use --force to overwrite)", store.Path())
		}
	}

	contacts, err := storage.SampleContacts(fsys, insurabook.SampleFile)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := store.Save(contacts); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Wrote %d sample contacts to %s\n", len(contacts), store.Path())
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitCommand = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errCommandFailed) {
		return exitCommand
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("InsuraBook keeps an insurance agent's client contacts."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
