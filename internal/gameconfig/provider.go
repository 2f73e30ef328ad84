package gameconfig

import (
	"context"
	"sync"
	"time"

	"github.com/limbo/lectio/pkg/clock"
	"github.com/limbo/lectio/pkg/logger"
	"golang.org/x/sync/singleflight"
)

type Provider interface {
	// Snapshot returns settings to be used for the whole of one operation
	Snapshot(ctx context.Context) (Settings, error)
}

// loadTimeout bounds one source read. The read is shared by every waiter, so it does not
// follow any single caller's cancellation.
const loadTimeout = 5 * time.Second

// Source is where raw key/value settings come from, usually the app_config table.
type Source interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

type staticProvider struct {
	settings Settings
}

// Static always returns the given settings.
func Static(s Settings) Provider {
	return staticProvider{settings: s}
}

func (p staticProvider) Snapshot(context.Context) (Settings, error) {
	return p.settings, nil
}

// CachedProvider keeps the last loaded snapshot for ttl. Concurrent refreshes collapse into
// one source read. If a refresh fails while an older snapshot exists, the older one is served.
type CachedProvider struct {
	src   Source
	ttl   time.Duration
	clk   clock.Clock
	log   *logger.Logger
	group singleflight.Group

	mu       sync.RWMutex
	current  *Settings
	loadedAt time.Time
}

func NewCachedProvider(src Source, ttl time.Duration, clk clock.Clock, log *logger.Logger) *CachedProvider {
	if log == nil {
		log = logger.NewNop()
	}
	return &CachedProvider{
		src: src,
		ttl: ttl,
		clk: clk,
		log: log,
	}
}

func (p *CachedProvider) Snapshot(ctx context.Context) (Settings, error) {
	if s, ok := p.fresh(); ok {
		return s, nil
	}
	v, err, _ := p.group.Do("snapshot", func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		values, err := p.src.GetAll(loadCtx)
		if err != nil {
			return nil, err
		}
		s := FromValues(values, p.log)
		p.mu.Lock()
		p.current = &s
		p.loadedAt = p.clk.Now()
		p.mu.Unlock()
		p.log.Debug("game config refreshed", "keys", len(values))
		return s, nil
	})
	if err != nil {
		p.mu.RLock()
		stale := p.current
		p.mu.RUnlock()
		if stale != nil {
			p.log.Warn("game config refresh failed, serving stale snapshot", "error", err)
			return *stale, nil
		}
		return Settings{}, err
	}
	return v.(Settings), nil
}

// Invalidate forces the next Snapshot to hit the source.
func (p *CachedProvider) Invalidate() {
	p.mu.Lock()
	p.loadedAt = time.Time{}
	p.mu.Unlock()
}

func (p *CachedProvider) fresh() (Settings, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil || p.loadedAt.IsZero() || p.clk.Now().Sub(p.loadedAt) >= p.ttl {
		return Settings{}, false
	}
	return *p.current, true
}
