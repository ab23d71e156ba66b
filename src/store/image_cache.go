package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
)

// DefaultImageTTL bounds how long a rendered figure stays cached.
const DefaultImageTTL = 24 * time.Hour

// kv is the part of the Redis client the cache uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ImageCache holds rendered report PNGs in Redis.
type ImageCache struct {
	client kv
	ttl    time.Duration
}

// NewImageCache creates a cache over a Redis client. A non-positive ttl means
// DefaultImageTTL.
func NewImageCache(client *redis.Client, ttl time.Duration) *ImageCache {
	return newImageCache(client, ttl)
}

func newImageCache(client kv, ttl time.Duration) *ImageCache {
	if ttl <= 0 {
		ttl = DefaultImageTTL
	}
	return &ImageCache{client: client, ttl: ttl}
}

// Get returns the cached image under key. The bool is false on a miss.
func (c *ImageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores png under key for the cache TTL.
func (c *ImageCache) Set(ctx context.Context, key string, png []byte) error {
	if err := c.client.Set(ctx, key, png, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Key is the cache key of a rendered report: a hash of the report kind, every input
// that changes the figure, and the render width. Category order is part of the key.
func Key(kind report.Kind, in report.Input, width int) string {
	d := xxhash.New()
	field := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	num := func(v int) { field(strconv.Itoa(v)) }
	flt := func(v float64) { field(strconv.FormatFloat(v, 'g', -1, 64)) }

	field(string(kind))
	field(in.Title)
	for _, r := range in.Responses.Responses() {
		field(r.Label)
		num(r.Count)
	}
	field("|")
	num(in.Respondents)
	for _, g := range in.Groups {
		field(g.Name)
		for _, l := range g.Labels {
			field(l)
		}
		field("|")
	}
	for _, p := range in.Palette {
		field(p)
	}
	field("|")
	for _, e := range in.Explode {
		flt(e)
	}
	field("|")
	flt(in.ValueMax)
	num(in.Size.Width)
	num(in.Size.Height)
	field(in.Footer)
	num(width)
	return fmt.Sprintf("report:%s:%016x", kind, d.Sum64())
}
