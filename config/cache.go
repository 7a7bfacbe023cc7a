package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// GraphCache holds built road network graphs keyed by area. Building a
// graph is by far the most expensive part of a request, and graphs are
// read-only once built, so concurrent requests for the same area share one.
var GraphCache *cache.Cache

const (
	graphCacheDuration   = 30 * time.Minute
	graphCleanupInterval = time.Hour
)

func InitCache() {
	GraphCache = cache.New(graphCacheDuration, graphCleanupInterval)
}

// GraphCacheKey identifies a road network fetch area. Coordinates are
// rounded so that nearby requests hit the same entry.
func GraphCacheKey(lat, lon, radius float64) string {
	return fmt.Sprintf("graph:%.4f:%.4f:%.0f", lat, lon, radius)
}

// CachedGraph looks up a previously built graph.
func CachedGraph(key string) (interface{}, bool) {
	if GraphCache == nil {
		return nil, false
	}
	return GraphCache.Get(key)
}

// CacheGraph stores a built graph for reuse.
func CacheGraph(key string, graph interface{}) {
	if GraphCache == nil {
		return
	}
	GraphCache.Set(key, graph, cache.DefaultExpiration)
}
