package redisrepo

import (
	"context"
	"errors"

	"merhaba-api/internal/domain/visit"

	"github.com/redis/go-redis/v9"
)

const DefaultPrefix = "merhaba:visits:"

// VisitCounter keeps a hash per route (name → hits) plus a global total.
type VisitCounter struct {
	rdb    *redis.Client
	prefix string
}

func NewVisitCounter(rdb *redis.Client, prefix string) *VisitCounter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &VisitCounter{rdb: rdb, prefix: prefix}
}

func (c *VisitCounter) routeKey(route visit.Route) string { return c.prefix + string(route) }
func (c *VisitCounter) totalKey() string                  { return c.prefix + "total" }

func (c *VisitCounter) Record(ctx context.Context, v *visit.Visit) error {
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HIncrBy(ctx, c.routeKey(v.Route), v.Name, 1)
		p.Incr(ctx, c.totalKey())
		return nil
	})
	return err
}

// Count returns how often name was greeted on route; unknown names count zero.
func (c *VisitCounter) Count(ctx context.Context, route visit.Route, name string) (int64, error) {
	n, err := c.rdb.HGet(ctx, c.routeKey(route), name).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (c *VisitCounter) Total(ctx context.Context) (int64, error) {
	n, err := c.rdb.Get(ctx, c.totalKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
