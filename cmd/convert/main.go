// Command convert is a one-shot converter: it reads a markdown file of
// meeting notes, creates a formatted document on the configured backend and
// prints the edit link. No conversion history is kept on this path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"meetingdocs/internal/config"
	"meetingdocs/internal/docbackend"
	"meetingdocs/internal/markdown"
	"meetingdocs/internal/service"
)

func main() {
	var (
		file  = flag.String("file", "meeting_notes.md", "path to the markdown notes file")
		title = flag.String("title", "", "document title (defaults to a generic title)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))

	notes, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	backend := docbackend.NewClient(cfg.DocsBaseURL, cfg.DocsAPIKey)
	parseOpts := markdown.Options{
		IndentWidth:     cfg.IndentWidth,
		FooterDelimiter: cfg.FooterDelimiter,
	}
	converter := service.NewConverter(backend, nil, parseOpts, cfg.DocsLinkTemplate)

	result, err := converter.Convert(context.Background(), service.ConvertRequest{
		Title:    *title,
		Markdown: string(notes),
	})
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Printf("Document created successfully: %s\n", result.URL)
}
