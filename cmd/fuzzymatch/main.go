// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/fuzzymatch"
	"github.com/poiesic/fuzzymatch/core"
	"github.com/poiesic/fuzzymatch/match"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "fuzzymatch",
		Usage: "Fuzzy phrase matching with rule-based match filtering",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML file with abbreviation, equivalence, and ignore tables",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank candidate phrases against a query",
				ArgsUsage: "QUERY CANDIDATE [CANDIDATE...]",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "Minimum similarity score (0-100)",
						Value:   match.DefaultThreshold,
					},
					&cli.BoolFlag{
						Name:    "partial",
						Aliases: []string{"p"},
						Usage:   "Use partial-ratio scoring for fuzzy substring matches",
					},
				},
			},
			{
				Name:   "demo",
				Usage:  "Run a set of sample queries against a built-in phrase corpus",
				Action: demoCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newEngine(c *cli.Context) (*fuzzymatch.Engine, error) {
	cfg := fuzzymatch.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := fuzzymatch.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return fuzzymatch.NewEngine(cfg)
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("need a query and at least one candidate phrase")
	}

	engine, err := newEngine(c)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	mode := core.ModeRatio
	if c.Bool("partial") {
		mode = core.ModePartialRatio
	}

	args := c.Args().Slice()
	results := engine.Search(args[0], args[1:], c.Int("threshold"), mode)

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' [%d]\n", i, hit.Phrase, hit.Score)
	}
	return nil
}

func demoCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	phrases := []string{
		"Dr. Smith is a cardiologist",
		"Doctor Smith is a specialist",
		"Example 1",
		"Example 2",
		"This is an example",
		"Python programming is fun",
		"Learn AI and ML",
		"Python Testing",
		"The quick brown fox jumps over the lazy dog",
		"123 Main Street",
	}

	queries := []struct {
		query     string
		threshold int
		mode      core.Mode
	}{
		{"Dr. Smith is a specialist", 80, core.ModeRatio},
		{"Example 1", 80, core.ModeRatio},
		{"Example 1", 80, core.ModePartialRatio},
		{"Python", 80, core.ModeRatio},
		{"Doctor Smith is a cardiologist", 80, core.ModeRatio},
		{"Doctor", 80, core.ModeRatio},
		{"Example 2", 80, core.ModeRatio},
		{"abcdef", 90, core.ModeRatio},
		{"", 80, core.ModeRatio},
		{"123 Main", 80, core.ModeRatio},
	}

	for _, q := range queries {
		fmt.Printf("\nQuery: '%s' (threshold %d, mode %s)\n", q.query, q.threshold, q.mode)
		results := engine.Search(q.query, phrases, q.threshold, q.mode)
		if len(results) == 0 {
			fmt.Println("  no matches")
			continue
		}
		for _, hit := range results {
			fmt.Printf("  '%s' [%d]\n", hit.Phrase, hit.Score)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
