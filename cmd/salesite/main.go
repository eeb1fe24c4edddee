package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"github.com/wellspentstyle/SaleSite-sub000/gemini"
	salegin "github.com/wellspentstyle/SaleSite-sub000/gin"
	salehttp "github.com/wellspentstyle/SaleSite-sub000/http"
	"github.com/wellspentstyle/SaleSite-sub000/scrape"
	saleslog "github.com/wellspentstyle/SaleSite-sub000/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command tree.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Extract sale records from product page URLs."`
	Serve  ServeCmd  `cmd:"" help:"Run the admin HTTP server."`
}

// Dependencies are bound into Kong and handed to command Run methods.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *salegin.Config
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg, err := salegin.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
		Config: cfg,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("salesite"),
		kong.Description("Product-page scraper for the deals-curation admin tool."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'salesite --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// buildBatch wires the full extraction stack: HTTP fetcher, Gemini
// completer, pipeline, logging decorators, and the politeness limiter.
func buildBatch(deps *Dependencies) (*scrape.Batch, func() error, error) {
	cfg := deps.Config

	if cfg.GeminiAPIKey == "" {
		fmt.Fprintln(deps.Stderr, "SALESITE_GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		return nil, nil, fmt.Errorf("SALESITE_GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	fetcher := salehttp.NewFetcher(salehttp.WithTimeout(cfg.FetchTimeout))
	pipeline := &scrape.Pipeline{
		Fetcher:   saleslog.NewLoggingFetcher(fetcher, deps.Logger),
		Completer: gemini.NewCompleter(client, cfg.GeminiModel),
		Timeout:   cfg.PipelineTimeout,
	}

	batch := &scrape.Batch{
		Extractor: saleslog.NewLoggingExtractor(pipeline, deps.Logger),
		Limiter:   scrape.NewDomainLimiter(cfg.DomainRPS),
	}
	return batch, fetcher.Close, nil
}

// ScrapeCmd extracts sale records for one or more URLs.
type ScrapeCmd struct {
	URLs []string `arg:"" name:"url" help:"Product page URLs, processed in order."`
	Test bool     `help:"Diagnostics mode: keep low-confidence results and attach the audit trail."`
	JSON bool     `help:"Print the collected batch result as JSON."`
}

// Run executes the scrape command.
func (cmd *ScrapeCmd) Run(deps *Dependencies) error {
	batch, closeFetcher, err := buildBatch(deps)
	if err != nil {
		return err
	}
	defer func() { _ = closeFetcher() }()

	emit := func(event salesite.Event) {
		switch event.Type {
		case salesite.EventScraping:
			fmt.Fprintf(deps.Stderr, "[%d/%d] scraping %s\n", event.Current, event.Total, event.URL)
		case salesite.EventSkip:
			fmt.Fprintf(deps.Stderr, "[%d/%d] skipped %s (%s)\n", event.Current, event.Total, event.URL, event.Item.SkipReason)
		case salesite.EventError:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", event.Current, event.Total, event.URL, event.Item.Err)
		}
	}

	result, err := batch.Run(deps.Ctx, cmd.URLs, salesite.Options{Diagnostics: cmd.Test}, emit)
	if err != nil {
		return err
	}

	if cmd.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, item := range result.Items {
		if item.Status != salesite.StatusSuccess {
			continue
		}
		p := item.Extraction.Product
		was := "-"
		if p.OriginalPrice != nil {
			was = fmt.Sprintf("%.2f", *p.OriginalPrice)
		}
		fmt.Fprintf(deps.Stdout, "%s\n  price %.2f (was %s, %d%% off)  confidence %d  via %s\n",
			p.Name, p.SalePrice, was, p.PercentOff, p.Confidence, item.Extraction.Method)
	}
	fmt.Fprintf(deps.Stdout, "done: %d ok, %d failed, %d skipped of %d\n",
		result.Successes, result.Failures, result.Skipped, result.Total)
	return nil
}

// ServeCmd runs the admin HTTP server.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides SALESITE_ADDR)."`
}

// Run executes the serve command.
func (cmd *ServeCmd) Run(deps *Dependencies) error {
	batch, closeFetcher, err := buildBatch(deps)
	if err != nil {
		return err
	}
	defer func() { _ = closeFetcher() }()

	addr := deps.Config.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	handler := salegin.NewHandler(batch)
	router := salegin.NewRouter(deps.Config, handler, deps.Logger)

	deps.Logger.Info("admin server listening", "addr", addr)
	server := &http.Server{Addr: addr, Handler: router}
	return server.ListenAndServe()
}
