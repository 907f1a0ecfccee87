package flightsearch

import (
	"fmt"
	"time"

	"github.com/ejd6617/skybound/internal/flightsearch/airports"
	"github.com/ejd6617/skybound/internal/flightsearch/cache"
	"github.com/ejd6617/skybound/internal/flightsearch/inbound"
	"github.com/ejd6617/skybound/internal/flightsearch/provider"
	"github.com/ejd6617/skybound/internal/flightsearch/usecase"
	"github.com/ejd6617/skybound/internal/pkg/pkgconfig"
	"github.com/ejd6617/skybound/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	airportsPath := dep.Config.GetString("modules.flight-search.airports_path")
	if airportsPath == "" {
		airportsPath = "data/airports.json"
	}
	directory, err := airports.Load(airportsPath)
	if err != nil {
		return fmt.Errorf("load airport directory: %w", err)
	}

	var transport provider.Transport = provider.NewHTTPTransport(provider.HTTPTransportOptions{
		BaseURL:    dep.Config.GetString("modules.flight-search.provider.base_url"),
		APIKey:     dep.Config.GetString("modules.flight-search.provider.api_key"),
		Timeout:    time.Duration(dep.Config.GetInt("modules.flight-search.provider.timeout_ms")) * time.Millisecond,
		MaxRetries: dep.Config.GetInt("modules.flight-search.provider.max_retries"),
	})
	if rps := dep.Config.GetFloat64("modules.flight-search.provider.rate_limit_rps"); rps > 0 {
		transport = provider.NewThrottledTransport(transport, rps, dep.Config.GetInt("modules.flight-search.provider.rate_limit_burst"))
	}

	currency := dep.Config.GetString("modules.flight-search.currency")
	if currency == "" {
		currency = "USD"
	}

	cacheTTL := 60 * time.Second
	if ttlSeconds := dep.Config.GetInt("modules.flight-search.cache.ttl_seconds"); ttlSeconds > 0 {
		cacheTTL = time.Duration(ttlSeconds) * time.Second
	}

	uc := usecase.New(usecase.Dependency{
		Transport:  transport,
		Builder:    provider.NewBuilder(currency),
		Normalizer: provider.NewNormalizer(directory),
		FanOut:     fanOutProfile(dep.Config),
		Cache:      cache.New(usecase.CloneFlights),
		CacheTTL:   cacheTTL,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, directory)

	return nil
}

// fanOutProfile resolves the two-tier fan-out policy once at startup.
// The constrained profile protects a low-quota downstream API during
// testing (two candidates, sequential); production favors latency (six
// candidates, all in parallel). Config keys override either number.
func fanOutProfile(cfg pkgconfig.Config) usecase.FanOutConfig {
	fanOut := usecase.FanOutConfig{MaxAirports: 6, Concurrency: 0}
	if cfg.GetString("app.profile") == "constrained" {
		fanOut = usecase.FanOutConfig{MaxAirports: 2, Concurrency: 1}
	}

	if v := cfg.GetInt("modules.flight-search.fanout.max_airports"); v > 0 {
		fanOut.MaxAirports = v
	}
	if v := cfg.GetInt("modules.flight-search.fanout.concurrency"); v > 0 {
		fanOut.Concurrency = v
	}
	return fanOut
}
