package liquid

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CacheConfig configures CachedFileSystem.
type CacheConfig struct {
	// TTL is how long a loaded source stays valid. Default: 5 minutes
	TTL time.Duration

	// MaxEntries caps the cache; the least recently read entry is evicted
	// first. Default: 1000
	MaxEntries int

	// NegativeTTL is how long "not found" results are remembered.
	// Zero disables negative caching.
	NegativeTTL time.Duration
}

// DefaultCacheConfig returns the default caching configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:         CacheDefaultTTL,
		MaxEntries:  CacheDefaultMaxEntries,
		NegativeTTL: CacheDefaultNegativeTTL,
	}
}

// CacheStats reports the cache contents
type CacheStats struct {
	Entries         int
	ValidEntries    int
	NegativeEntries int
	Hits            int64
	Misses          int64
}

type fileCacheEntry struct {
	name       string
	source     string
	notFound   bool
	cachedAt   time.Time
	accessedAt time.Time
}

// CachedFileSystem wraps any FileSystem with an in-memory source cache.
// Only successful reads and not-found results are cached; other errors
// always reach the caller.
type CachedFileSystem struct {
	fs     FileSystem
	config CacheConfig
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*fileCacheEntry
	hits    int64
	misses  int64
}

// NewCachedFileSystem wraps fs. Zero TTL and MaxEntries take the defaults.
func NewCachedFileSystem(fs FileSystem, config CacheConfig, logger *zap.Logger) *CachedFileSystem {
	if config.TTL == 0 {
		config.TTL = CacheDefaultTTL
	}
	if config.MaxEntries == 0 {
		config.MaxEntries = CacheDefaultMaxEntries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFileSystem{
		fs:      fs,
		config:  config,
		logger:  logger,
		now:     time.Now,
		entries: make(map[string]*fileCacheEntry),
	}
}

// ReadTemplateFile implements FileSystem
func (c *CachedFileSystem) ReadTemplateFile(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	if entry, ok := c.entries[name]; ok && c.isValid(entry) {
		entry.accessedAt = c.now()
		c.hits++
		c.mu.Unlock()

		c.logger.Debug(LogMsgCacheHit, zap.String(LogFieldTemplate, name))
		if entry.notFound {
			return "", NewTemplateNotFoundError(name)
		}
		return entry.source, nil
	}
	c.misses++
	c.mu.Unlock()

	c.logger.Debug(LogMsgCacheMiss, zap.String(LogFieldTemplate, name))
	source, err := c.fs.ReadTemplateFile(ctx, name)
	if err != nil {
		if IsTemplateNotFound(err) && c.config.NegativeTTL > 0 {
			c.store(name, "", true)
		}
		return "", err
	}
	c.store(name, source, false)
	return source, nil
}

// Invalidate drops the cached entry for name
func (c *CachedFileSystem) Invalidate(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}

// Clear drops every cached entry
func (c *CachedFileSystem) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*fileCacheEntry)
	c.mu.Unlock()
}

// Stats returns a snapshot of the cache counters
func (c *CachedFileSystem) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
	for _, entry := range c.entries {
		if !c.isValid(entry) {
			continue
		}
		if entry.notFound {
			stats.NegativeEntries++
		} else {
			stats.ValidEntries++
		}
	}
	return stats
}

// Caller must hold mu.
func (c *CachedFileSystem) isValid(entry *fileCacheEntry) bool {
	ttl := c.config.TTL
	if entry.notFound {
		ttl = c.config.NegativeTTL
	}
	return c.now().Sub(entry.cachedAt) < ttl
}

func (c *CachedFileSystem) store(name, source string, notFound bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; !exists && len(c.entries) >= c.config.MaxEntries {
		c.evictOldest()
	}
	now := c.now()
	c.entries[name] = &fileCacheEntry{
		name:       name,
		source:     source,
		notFound:   notFound,
		cachedAt:   now,
		accessedAt: now,
	}
}

// Caller must hold mu.
func (c *CachedFileSystem) evictOldest() {
	var oldest *fileCacheEntry
	for _, entry := range c.entries {
		if oldest == nil || entry.accessedAt.Before(oldest.accessedAt) {
			oldest = entry
		}
	}
	if oldest != nil {
		delete(c.entries, oldest.name)
	}
}
