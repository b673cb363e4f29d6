package uae

import (
	"net/http"
	"time"
)

// Options represents the configuration options for the UAE tools.
type Options struct {
	// KnowledgePath is the path to the knowledge base JSON file
	KnowledgePath string
	// AladhanAPI enables the remote prayer-times lookup
	AladhanAPI bool
	// AladhanURL overrides the prayer-times service endpoint
	AladhanURL string
	// HTTPClient is the client used for remote lookups
	HTTPClient *http.Client
	// Clock supplies the current time, used when no date is given
	Clock func() time.Time
}

// Option is a function that configures Options.
type Option func(*Options)

// WithKnowledgePath sets the knowledge base JSON file path.
func WithKnowledgePath(path string) Option {
	return func(o *Options) {
		o.KnowledgePath = path
	}
}

// WithAladhanAPI toggles the remote prayer-times lookup.
func WithAladhanAPI(enabled bool) Option {
	return func(o *Options) {
		o.AladhanAPI = enabled
	}
}

// WithAladhanURL sets the prayer-times service endpoint.
func WithAladhanURL(url string) Option {
	return func(o *Options) {
		o.AladhanURL = url
	}
}

// WithHTTPClient sets the HTTP client used for remote lookups.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithClock sets the time source used when no date is supplied.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}
