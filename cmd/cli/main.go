package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/cliwire/internal/app"
	"github.com/vk/cliwire/internal/cli"
	"github.com/vk/cliwire/internal/config"
	"github.com/vk/cliwire/internal/demo"
	"github.com/vk/cliwire/internal/request"
)

// main is the entrypoint for the cliwire binary. It is the only place that
// writes to stdout or terminates the process; everything below it returns
// values.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	code, err := run(os.Stdout, os.Args[1:])
	if err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run encapsulates the main application logic for easier testing: it returns
// the process exit code instead of calling os.Exit, and writes output lines
// to outW.
func run(outW io.Writer, args []string) (int, error) {
	binCfg, err := cli.Parse(args)
	if err != nil {
		return 0, err
	}
	logger := cli.NewLogger(binCfg.LogLevel, binCfg.LogFormat, os.Stderr)

	opts := app.Options{
		Environ:  os.Environ(),
		Reserved: cli.Reserved(),
		Bools:    cli.Bools(),
	}
	if binCfg.Post {
		opts.Variant = request.PostVariant
	}
	if binCfg.ConfigPath != "" {
		fileCfg, err := config.Load(binCfg.ConfigPath, opts.Environ)
		if err != nil {
			return 0, err
		}
		opts.Base = fileCfg.Base
		opts.Env = fileCfg.Env
		opts.Reserved = append(opts.Reserved, fileCfg.Reserved...)
		logger.Debug("Options file loaded.", "path", binCfg.ConfigPath)
	}

	adapter := app.New(demo.NewHandler(), opts, logger)
	result, err := adapter.Run(context.Background(), args)
	if err != nil {
		return 0, err
	}

	for _, line := range result.Lines {
		fmt.Fprintln(outW, line)
	}
	return result.Code, nil
}
