package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jtervala/subreader/internal/app"
	"github.com/jtervala/subreader/internal/cookies"
	"github.com/jtervala/subreader/internal/fetch"
	"github.com/jtervala/subreader/internal/tools"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath  string
		origin      string
		publication string
		author      string
		excluded    string
		cookiesPath string
		userAgent   string
		timeout     time.Duration
		attempts    int
		noFeed      bool
		listOnly    bool
		printTools  bool
		invokeTool  string
		verbose     bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("SUBREADER_CONFIG"), "Path to YAML or JSON config file")
	flag.StringVar(&origin, "origin", app.DefaultOrigin, "Publication origin URL")
	flag.StringVar(&publication, "publication", app.DefaultPublication, "Publication display name used in messages")
	flag.StringVar(&author, "author", app.DefaultAuthor, "Publication author (single-author publication)")
	flag.StringVar(&excluded, "exclude", app.DefaultExcludedSlug, "Comma-separated post slugs to exclude from listings")
	flag.StringVar(&cookiesPath, "cookies", os.Getenv("SUBREADER_COOKIES"), "Path to browser cookie export (JSON array)")
	flag.StringVar(&userAgent, "ua", "", "Override the browser user agent")
	flag.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Per-request HTTP timeout")
	flag.IntVar(&attempts, "attempts", app.DefaultMaxAttempts, "HTTP attempts per request, including the first")
	flag.BoolVar(&noFeed, "no-feed", false, "Disable the RSS feed fallback for article discovery")
	flag.BoolVar(&listOnly, "list", false, "List discovered articles instead of fetching the latest")
	flag.BoolVar(&printTools, "tools", false, "Print the OpenAI-encoded tool manifest and exit")
	flag.StringVar(&invokeTool, "tool", "", "Invoke a registered tool by name and print its JSON result")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cookiesPath == "" {
		cookiesPath = app.DefaultCookiesPath
	}

	cfg := app.Config{
		Origin:            origin,
		Publication:       publication,
		Author:            author,
		ExcludedSlugs:     splitList(excluded),
		CookiesPath:       cookiesPath,
		UserAgent:         userAgent,
		PerRequestTimeout: timeout,
		MaxAttempts:       attempts,
		FeedFallback:      !noFeed,
		Verbose:           verbose,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("cannot read config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	jar, err := cookies.Store{Path: cfg.CookiesPath}.Load()
	if err != nil {
		log.Warn().Err(err).Msg("cookie file unreadable; fetching unauthenticated")
	}
	if len(jar) == 0 {
		log.Debug().Str("path", cfg.CookiesPath).Msg("no session cookies loaded")
	}

	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		Cookies:           jar,
		MaxAttempts:       cfg.MaxAttempts,
		PerRequestTimeout: cfg.PerRequestTimeout,
	}
	reader := app.New(cfg, client)

	registry, err := tools.NewReaderRegistry(reader)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build tool registry")
	}

	ctx := context.Background()
	switch {
	case printTools:
		encoded := tools.EncodeTools(registry.Specs())
		b, err := json.MarshalIndent(encoded, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("cannot encode tool manifest")
		}
		fmt.Println(string(b))
	case invokeTool != "":
		def, ok := registry.Get(invokeTool)
		if !ok {
			log.Fatal().Str("tool", invokeTool).Msg("unknown tool")
		}
		result, err := def.Handler(ctx, json.RawMessage(`{}`))
		if err != nil {
			log.Fatal().Err(err).Str("tool", invokeTool).Msg("tool failed")
		}
		fmt.Println(string(result))
	case listOnly:
		for _, s := range reader.ListArticles(ctx) {
			if s.PublishedAt != "" {
				fmt.Printf("%s\t%s\t%s\n", s.PublishedAt, s.Title, s.URL)
			} else {
				fmt.Printf("%s\t%s\n", s.Title, s.URL)
			}
		}
	default:
		fmt.Println(reader.LatestArticle(ctx))
	}
}

// splitList parses a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
