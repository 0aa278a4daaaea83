package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zseed/internal/cli"
	"github.com/zarlcorp/zseed/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if os.Getenv("ZSEED_DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	app := zapp.New(zapp.WithName("zseed"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, opts := cli.ParseArgs(os.Args[1:])

	var err error
	switch {
	case opts.Version:
		fmt.Printf("zseed %s\n", version)
	case opts.Interactive:
		err = runTUI(cfg, opts)
	default:
		err = runCLI(ctx, cfg, opts)
	}

	if err != nil {
		slog.Error("generate", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// outputFS is the current working directory.
func outputFS() zfilesystem.ReadWriteFileFS {
	return zfilesystem.NewOSFileSystem(".")
}

func runCLI(_ context.Context, cfg cli.Config, opts cli.Options) error {
	return cli.Run(os.Stdout, outputFS(), cfg, opts)
}

func runTUI(cfg cli.Config, opts cli.Options) error {
	if !cli.IsTerminal(os.Stdin) {
		return errors.New("interactive mode needs a terminal")
	}

	fsys := outputFS()
	generate := func(c cli.Config) (cli.Summary, error) {
		return cli.Generate(fsys, cli.NewGenerator(opts), c)
	}

	m := tui.New(version, cfg, generate)
	_, err := tea.NewProgram(m).Run()
	return err
}
