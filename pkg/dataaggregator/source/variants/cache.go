package variants

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/trackmap/trackmap/pkg/redis_client"
	"github.com/trackmap/trackmap/pkg/tdf"
)

const detailCacheExpiration = 15 * time.Minute

// detailCache keeps assembled route details in Redis between imports. It is a
// no-op when Redis is not connected.
type detailCache struct {
	cache *cache.Cache[string]
}

func newDetailCache() *detailCache {
	if redis_client.Client == nil {
		return &detailCache{}
	}

	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(detailCacheExpiration))

	return &detailCache{
		cache: cache.New[string](redisStore),
	}
}

func (c *detailCache) Get(routeIdentifier string) *tdf.RouteDetail {
	if c.cache == nil {
		return nil
	}

	cached, err := c.cache.Get(context.Background(), cacheKey(routeIdentifier))
	if err != nil {
		return nil
	}

	var detail *tdf.RouteDetail
	if err := json.Unmarshal([]byte(cached), &detail); err != nil {
		return nil
	}

	return detail
}

func (c *detailCache) Set(routeIdentifier string, detail *tdf.RouteDetail) {
	if c.cache == nil {
		return
	}

	encoded, err := json.Marshal(detail)
	if err != nil {
		return
	}

	c.cache.Set(context.Background(), cacheKey(routeIdentifier), string(encoded))
}

func cacheKey(routeIdentifier string) string {
	return fmt.Sprintf("route_detail:%s", routeIdentifier)
}
