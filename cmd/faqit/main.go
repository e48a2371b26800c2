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
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/faqit"
	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/indexing"
	"github.com/poiesic/faqit/locale"
	"github.com/poiesic/faqit/respond"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	languageFlag := &cli.StringFlag{
		Name:    "language",
		Aliases: []string{"lang"},
		Usage:   "Corpus language (en, ja)",
		Value:   "en",
		EnvVars: []string{"FAQIT_LANGUAGE"},
	}

	return &cli.App{
		Name:      "faqit",
		Usage:     "FAQ assistant with hybrid keyword and semantic retrieval",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"FAQIT_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "faqit-data",
				EnvVars: []string{"FAQIT_DB"},
			},
			&cli.StringFlag{
				Name:    "embedder",
				Usage:   "Embedding backend (openai, local)",
				Value:   faqit.EmbedderOpenAI,
				EnvVars: []string{"FAQIT_EMBEDDER"},
			},
			&cli.StringFlag{
				Name:    "embedding-host",
				Usage:   "Embedding service host URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"FAQIT_EMBEDDING_HOST"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Embedding service API key",
				EnvVars: []string{"FAQIT_API_KEY", "OPENAI_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "en-model",
				Usage:   "Embedding model of the English corpus",
				Value:   locale.English().EmbeddingModel,
				EnvVars: []string{"FAQIT_EN_MODEL"},
			},
			&cli.StringFlag{
				Name:    "ja-model",
				Usage:   "Embedding model of the Japanese corpus",
				Value:   locale.Japanese().EmbeddingModel,
				EnvVars: []string{"FAQIT_JA_MODEL"},
			},
			&cli.IntFlag{
				Name:  "dimensions",
				Usage: "Vector size of the local embedder",
				Value: ai.DefaultConfig().Dimensions,
			},
			&cli.Float64Flag{
				Name:    "threshold",
				Usage:   "Minimum semantic score of an answer",
				Value:   float64(respond.DefaultThreshold),
				EnvVars: []string{"FAQIT_THRESHOLD"},
			},
			&cli.IntFlag{
				Name:  "top-k",
				Usage: "Number of semantic candidates per query",
				Value: respond.DefaultTopK,
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Number of entries embedded per request",
				Value: indexing.DefaultConfig().BatchSize,
			},
			&cli.IntFlag{
				Name:  "max-retries",
				Usage: "Maximum attempts per embedding batch",
				Value: indexing.DefaultConfig().MaxRetries,
			},
			&cli.DurationFlag{
				Name:  "retry-delay",
				Usage: "Base delay for exponential backoff",
				Value: indexing.DefaultConfig().RetryDelay,
			},
		},
		Before: func(c *cli.Context) error {
			// A missing .env file is fine
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return setupLogger(c)
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "Listen address",
						Value:   ":8000",
						EnvVars: []string{"FAQIT_ADDR"},
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-request deadline",
						Value: 10 * time.Second,
					},
					&cli.StringFlag{
						Name:    "allowed-origin",
						Usage:   "CORS origin of the web client",
						Value:   "http://localhost:3000",
						EnvVars: []string{"FAQIT_ALLOWED_ORIGIN"},
					},
					&cli.StringFlag{
						Name:    "images",
						Usage:   "Directory image references are resolved against",
						Value:   ".",
						EnvVars: []string{"FAQIT_IMAGES"},
					},
				},
			},
			{
				Name:   "chat",
				Usage:  "Chat with the assistant in the terminal",
				Action: chatCommand,
				Flags: []cli.Flag{
					languageFlag,
					&cli.StringFlag{
						Name:  "images",
						Usage: "Directory image references are resolved against",
						Value: ".",
					},
					&cli.BoolFlag{
						Name:  "save-images",
						Usage: "Save the image of each answer to the working directory",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Store the built-in corpus of every empty language",
				Action: seedCommand,
			},
			{
				Name:      "import",
				Usage:     "Import entries from a JSON file",
				ArgsUsage: "FILE",
				Action:    importCommand,
				Flags: []cli.Flag{
					languageFlag,
					&cli.BoolFlag{
						Name:  "replace",
						Usage: "Replace the existing entries of the language",
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Export entries to a JSON file, or stdout with -",
				ArgsUsage: "FILE",
				Action:    exportCommand,
				Flags:     []cli.Flag{languageFlag},
			},
			{
				Name:   "list",
				Usage:  "List stored entries in corpus order",
				Action: listCommand,
				Flags:  []cli.Flag{languageFlag},
			},
			{
				Name:      "search",
				Usage:     "Show the ranked results of a query",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					languageFlag,
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Log every keyword and semantic candidate",
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild every knowledge base with progress output",
				Action: reindexCommand,
			},
			{
				Name:   "images",
				Usage:  "Render the sample image set",
				Action: imagesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Output directory",
						Value: "images",
					},
				},
			},
		},
	}
}

// openAssistant opens the assistant configured by the global flags.
func openAssistant(c *cli.Context, extra ...faqit.Option) (*faqit.Assistant, error) {
	config := indexing.DefaultConfig()
	config.BatchSize = c.Int("batch-size")
	config.MaxRetries = c.Int("max-retries")
	config.RetryDelay = c.Duration("retry-delay")
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []faqit.Option{
		faqit.WithEmbedderKind(c.String("embedder")),
		faqit.WithAIOptions(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithAPIKey(c.String("api-key")),
			ai.WithDimensions(c.Int("dimensions")),
		),
		faqit.WithEmbeddingModel(core.LocaleEnglish, c.String("en-model")),
		faqit.WithEmbeddingModel(core.LocaleJapanese, c.String("ja-model")),
		faqit.WithIndexingConfig(config),
		faqit.WithThreshold(float32(c.Float64("threshold"))),
		faqit.WithTopK(c.Int("top-k")),
	}
	opts = append(opts, extra...)

	a, err := faqit.NewAssistant(context.Background(), c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open assistant: %w", err)
	}
	return a, nil
}

func languageOf(c *cli.Context) (core.Locale, error) {
	return locale.Parse(c.String("language"))
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
