package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"fraglens/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	url := flag.String("url", "", "scoring endpoint URL (optional)")
	model := flag.String("model", "", "model name sent to the scoring endpoint (optional)")
	temperature := flag.Float64("temperature", 0, "sampling temperature (optional)")
	linesPerBlock := flag.Int("lines-per-block", 0, "lines per block (optional)")
	blocksPerFragment := flag.Int("blocks-per-fragment", 0, "blocks per fragment (optional)")
	theme := flag.String("theme", "", "color theme: synthwave or accessibility (optional)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || args[0] == "" {
		usage()
		return 2
	}
	if *linesPerBlock < 0 || *blocksPerFragment < 0 {
		fmt.Fprintln(os.Stderr, "fraglens: window parameters must be positive")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:        *configPath,
		Question:          args[0],
		Files:             args[1:],
		URL:               envFallback(*url, "FRAGLENS_URL"),
		Model:             envFallback(*model, "FRAGLENS_MODEL"),
		Temperature:       *temperature,
		LinesPerBlock:     *linesPerBlock,
		BlocksPerFragment: *blocksPerFragment,
		Theme:             envFallback(*theme, "FRAGLENS_THEME"),
	}
	if opts.Temperature == 0 {
		if v, err := strconv.ParseFloat(os.Getenv("FRAGLENS_TEMPERATURE"), 64); err == nil {
			opts.Temperature = v
		}
	}
	if opts.LinesPerBlock == 0 {
		opts.LinesPerBlock = envInt("FRAGLENS_LINES_PER_BLOCK")
	}
	if opts.BlocksPerFragment == 0 {
		opts.BlocksPerFragment = envInt("FRAGLENS_BLOCKS_PER_FRAGMENT")
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "fraglens: %v\n", err)
		return 1
	}
	return 0
}

func envFallback(flagValue, envKey string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envKey)
}

func envInt(envKey string) int {
	v, err := strconv.Atoi(os.Getenv(envKey))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fraglens [flags] QUESTION FILE...\n\n")
	fmt.Fprintf(os.Stderr, "Scores code fragments from FILE... against QUESTION using an\n")
	fmt.Fprintf(os.Stderr, "OpenAI-compatible endpoint, then lets you browse the results.\n\n")
	flag.PrintDefaults()
}
