package notes

import (
	"encoding/hex"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/goliatone/go-jotdown/internal/jotdown"
)

const cacheShards = 8

// resultCache memoises parse results by content checksum, so renamed or
// duplicated notes share an entry and edited notes miss. Entries are cloned
// on the way in and out; callers own what they get back.
type resultCache struct {
	client *sturdyc.Client[jotdown.Result]
}

func newResultCache(capacity int, ttl time.Duration) *resultCache {
	if capacity <= 0 || ttl <= 0 {
		return nil
	}
	shards := cacheShards
	if capacity < shards {
		shards = capacity
	}
	return &resultCache{
		client: sturdyc.New[jotdown.Result](capacity, shards, ttl, 10),
	}
}

func (c *resultCache) parse(checksum, body []byte) (jotdown.Result, bool) {
	if c == nil {
		return jotdown.Parse(body), false
	}
	key := hex.EncodeToString(checksum)
	if cached, ok := c.client.Get(key); ok {
		return cached.Clone(), true
	}
	result := jotdown.Parse(body)
	c.client.Set(key, result.Clone())
	return result, false
}
