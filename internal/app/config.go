package app

import "time"

// Defaults for the single publication this reader targets. All of them can
// be overridden by flags or a config file; none is process-wide mutable
// state.
const (
	DefaultOrigin       = "https://tradecompanion.substack.com"
	DefaultPublication  = "Trade Companion"
	DefaultAuthor       = "Adam Mancini"
	DefaultExcludedSlug = "my-trade-methodology-fundamentals"
	DefaultCookiesPath  = "substack_cookies.json"

	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 2
)

// Config holds runtime configuration for the reader.
type Config struct {
	// Publication
	Origin        string
	Publication   string
	Author        string
	ExcludedSlugs []string

	// Credentials
	CookiesPath string

	// HTTP
	UserAgent         string
	PerRequestTimeout time.Duration
	MaxAttempts       int

	// Behavior
	FeedFallback bool
	Verbose      bool
}
