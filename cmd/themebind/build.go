package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themebind/internal/mapping"
	"github.com/jmylchreest/themebind/internal/vstheme"
	"github.com/jmylchreest/themebind/internal/watch"
)

var buildOpts struct {
	input  string
	output string
	watch  bool
}

func init() {
	rootCmd.Flags().StringVarP(&buildOpts.input, "input", "i", "",
		"Path to the theme file to rewrite")
	rootCmd.Flags().StringVarP(&buildOpts.output, "output", "o", "",
		"Destination path for the rewritten theme (default: stdout)")
	rootCmd.Flags().BoolVarP(&buildOpts.watch, "watch", "w", false,
		"Rebuild whenever the mappings or the theme change (requires --output)")

	_ = rootCmd.MarkFlagRequired("input")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if buildOpts.watch && buildOpts.output == "" {
		return fmt.Errorf("--watch requires --output")
	}

	if buildOpts.watch {
		return runWatch(cmd.Context())
	}

	m, err := loadMapping()
	if err != nil {
		return err
	}
	return buildOnce(m, buildOpts.input, buildOpts.output)
}

// buildOnce loads the theme, resolves every symbolic reference and writes
// the result. On any failure the destination is left untouched.
func buildOnce(m *mapping.Mapping, inputPath, outputPath string) error {
	doc, err := vstheme.Load(inputPath)
	if err != nil {
		return err
	}

	if err := vstheme.Rewrite(doc, m); err != nil {
		return err
	}

	if outputPath == "" {
		return doc.Encode(os.Stdout)
	}
	if err := doc.Save(outputPath); err != nil {
		return err
	}

	if fi, err := os.Stat(outputPath); err == nil {
		logger.Debug("wrote theme", "path", outputPath, "size", humanize.Bytes(uint64(fi.Size())))
	}
	return nil
}

// runWatch rebuilds the output whenever the mappings document or the input
// theme changes. A failed rebuild logs the error and leaves the previous
// output in place.
func runWatch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	colors, err := colorsPath()
	if err != nil {
		return err
	}

	rebuild := func() {
		log := logger.With("build_id", ulid.Make().String())
		start := time.Now()

		m, err := mapping.Load(colors)
		if err != nil {
			log.Error("loading mappings failed", "error", err)
			return
		}
		if err := buildOnce(m, buildOpts.input, buildOpts.output); err != nil {
			log.Error("rebuild failed", "error", err)
			return
		}

		size := "unknown"
		if fi, err := os.Stat(buildOpts.output); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		log.Info("rebuilt", "output", buildOpts.output, "size", size, "duration", time.Since(start))
	}

	w, err := watch.New([]string{colors, buildOpts.input}, cfg.Watch.Debounce.Std(), rebuild)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer func() {
		if err := w.Stop(); err != nil {
			logger.Warn("stopping watcher", "error", err)
		}
	}()

	rebuild()

	logger.Info("watching for changes",
		"colors", colors,
		"input", buildOpts.input,
		"debounce", cfg.Watch.Debounce.Std())

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
