package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/poiesic/faqit"
	"github.com/poiesic/faqit/dataset"
	"github.com/poiesic/faqit/imagery"
	"github.com/poiesic/faqit/knowledge"
	"github.com/poiesic/faqit/server"
	"github.com/urfave/cli/v2"
)

var errMissingArgument = errors.New("missing argument")

func serveCommand(c *cli.Context) error {
	a, err := openAssistant(c, faqit.WithSeed())
	if err != nil {
		return err
	}
	defer a.Close()

	srv, err := server.NewServer(a, &server.Config{
		Addr:          c.String("addr"),
		Timeout:       c.Duration("timeout"),
		AllowedOrigin: c.String("allowed-origin"),
	}, server.WithImages(imagery.NewFileResolver(c.String("images"))))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}

func chatCommand(c *cli.Context) error {
	l, err := languageOf(c)
	if err != nil {
		return err
	}
	a, err := openAssistant(c, faqit.WithSeed())
	if err != nil {
		return err
	}
	defer a.Close()

	responder, err := a.Responder(l)
	if err != nil {
		return err
	}

	saveDir := ""
	if c.Bool("save-images") {
		saveDir = "."
	}
	console := &console{
		responder: responder,
		images:    imagery.NewFileResolver(c.String("images")),
		saveDir:   saveDir,
		in:        c.App.Reader,
		out:       c.App.Writer,
	}
	return console.run(c.Context)
}

func seedCommand(c *cli.Context) error {
	a, err := openAssistant(c, faqit.WithSeed())
	if err != nil {
		return err
	}
	defer a.Close()

	for _, l := range a.Locales() {
		kb, err := a.KnowledgeBase(l)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s: %d entries\n", l, kb.Len())
	}
	return nil
}

func importCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("%w: FILE", errMissingArgument)
	}
	l, err := languageOf(c)
	if err != nil {
		return err
	}

	entries, err := dataset.LoadFile(path, l)
	if err != nil {
		return err
	}

	a, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Import(c.Context, l, entries, c.Bool("replace")); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Imported %d entries into %s\n", len(entries), l)
	return nil
}

func exportCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("%w: FILE", errMissingArgument)
	}
	l, err := languageOf(c)
	if err != nil {
		return err
	}

	a, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.Entries(c.Context, l)
	if err != nil {
		return err
	}
	if path == "-" {
		return dataset.Save(c.App.Writer, entries)
	}
	return dataset.SaveFile(path, entries)
}

func listCommand(c *cli.Context) error {
	l, err := languageOf(c)
	if err != nil {
		return err
	}

	a, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.Entries(c.Context, l)
	if err != nil {
		return err
	}
	for i, e := range entries {
		fmt.Fprintf(c.App.Writer, "%3d  %-20s %s\n", i, e.Category, e.Question)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("%w: QUERY", errMissingArgument)
	}
	l, err := languageOf(c)
	if err != nil {
		return err
	}

	a, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer a.Close()

	var monitor knowledge.SearchMonitor
	if c.Bool("verbose") {
		monitor = &knowledge.LogMonitor{
			Logger: slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug})),
		}
	}

	results, err := a.Search(c.Context, l, query, monitor)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(c.App.Writer, "No results")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(c.App.Writer, "%.3f  %-8s %-20s %s\n", r.Score, r.Kind, r.Category, r.Question)
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	a, err := openAssistant(c, faqit.WithProgress(c.App.ErrWriter))
	if err != nil {
		return err
	}
	defer a.Close()

	for _, l := range a.Locales() {
		kb, err := a.KnowledgeBase(l)
		if err != nil {
			return err
		}
		categories := kb.Categories()
		fmt.Fprintf(c.App.Writer, "%s: %d entries in %d categories\n", l, kb.Len(), len(categories))
	}
	return nil
}

func imagesCommand(c *cli.Context) error {
	written, err := imagery.WriteSamples(c.String("dir"), slog.Default())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Created %d images in %s\n", len(written), c.String("dir"))
	return nil
}
