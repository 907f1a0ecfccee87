package usecase

import (
	"log/slog"
	"time"

	"github.com/ejd6617/skybound/internal/flightsearch/cache"
	"github.com/ejd6617/skybound/internal/flightsearch/entity"
	"github.com/ejd6617/skybound/internal/flightsearch/provider"
)

// FanOutConfig is the profile-resolved fan-out policy, decided once at
// startup and injected here. MaxAirports truncates (never rejects) the
// flexible-airport candidate list; Concurrency is the limiter width,
// where 0 means one branch per candidate in parallel.
type FanOutConfig struct {
	MaxAirports int
	Concurrency int
}

type Dependency struct {
	Transport  provider.Transport
	Builder    provider.Builder
	Normalizer *provider.Normalizer
	FanOut     FanOutConfig
	Cache      *cache.Cache[[]entity.Flight]
	CacheTTL   time.Duration
	Logger     *slog.Logger
}

type Usecase struct {
	transport  provider.Transport
	builder    provider.Builder
	normalizer *provider.Normalizer
	fanOut     FanOutConfig
	cache      *cache.Cache[[]entity.Flight]
	cacheTTL   time.Duration
	logger     *slog.Logger
}

func New(dep Dependency) *Usecase {
	logger := dep.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{
		transport:  dep.Transport,
		builder:    dep.Builder,
		normalizer: dep.Normalizer,
		fanOut:     dep.FanOut,
		cache:      dep.Cache,
		cacheTTL:   dep.CacheTTL,
		logger:     logger,
	}
}
