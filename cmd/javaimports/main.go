package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/viant/afs"
	"github.com/viant/javaimports/config"
	"github.com/viant/javaimports/importer"
)

// Version is the released version
var Version = "0.1.0"

func main() {
	app := &cli.App{
		Name:      "javaimports",
		Usage:     "Add missing imports to a Java source file",
		UsageText: "javaimports [options] <file | ->",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "replace",
				Aliases: []string{"r", "w"},
				Usage:   "Write the result to the file instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug information to stderr",
			},
			&cli.StringFlag{
				Name:  "repository",
				Usage: "Local maven repository (defaults to ~/.m2/repository)",
			},
			&cli.StringFlag{
				Name:  "assume-filename",
				Usage: "File name to use when reading from stdin",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Skip project files matching glob patterns (e.g., --exclude '**/generated/**')",
			},
		},
		Action: run,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context, fs afs.Service) (*config.Config, error) {
	cfg := config.Default()
	if URL := c.String("config"); URL != "" {
		loaded, err := config.Load(c.Context, fs, URL)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if repository := c.String("repository"); repository != "" {
		cfg.Repository = repository
	}
	if c.Bool("verbose") {
		cfg.Debug = true
	}
	cfg.Exclude = append(cfg.Exclude, c.StringSlice("exclude")...)
	return cfg, nil
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowAppHelp(c)
	}
	fs := afs.New()
	cfg, err := loadConfig(c, fs)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path, src, err := readInput(c, fs)
	if err != nil {
		return err
	}
	i, err := importer.New(importer.WithConfig(cfg), importer.WithLogger(logger), importer.WithFS(fs))
	if err != nil {
		return err
	}
	fixed, result, err := i.AddUsedImports(c.Context, path, src)
	if err != nil {
		return err
	}
	if !result.Complete {
		logger.Warn("javaimports.incomplete", "path", path, "unresolved", result.Unresolved.Sorted())
	}
	if !c.Bool("replace") || c.Args().First() == "-" {
		_, err = os.Stdout.Write(fixed)
		return err
	}
	if string(fixed) == string(src) {
		return nil
	}
	return os.WriteFile(path, fixed, 0o644)
}

func readInput(c *cli.Context, fs afs.Service) (string, []byte, error) {
	name := c.Args().First()
	if name == "-" {
		path, err := filepath.Abs(c.String("assume-filename"))
		if err != nil {
			return "", nil, err
		}
		src, err := io.ReadAll(os.Stdin)
		return path, src, err
	}
	path, err := filepath.Abs(name)
	if err != nil {
		return "", nil, err
	}
	src, err := fs.DownloadWithURL(c.Context, path)
	if err != nil {
		return "", nil, fmt.Errorf("%v: could not read file: %w", path, err)
	}
	return path, src, nil
}
