package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/policedept/records-system/internal/api/metrics"
	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

// AgentCache is a read-through cache decorating an AgentRepository. Only
// Find is cached: the case service's existence checks and single-agent reads
// hit it hardest, and mutations invalidate the entry so reads never see a stale
// record. A stale positive after a concurrent delete is harmless because the
// foreign key on cases fails the subsequent write anyway.
//
// Key format: agent:<id>
type AgentCache struct {
	inner  ports.AgentRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewAgentCache wraps inner with a Redis cache of the given TTL.
func NewAgentCache(inner ports.AgentRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *AgentCache {
	return &AgentCache{inner: inner, client: client, ttl: ttl, log: log}
}

func (c *AgentCache) key(id int64) string {
	return fmt.Sprintf("agent:%d", id)
}

func (c *AgentCache) Find(ctx context.Context, id int64) (*domain.Agent, error) {
	payload, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var a domain.Agent
		if err := json.Unmarshal(payload, &a); err == nil {
			metrics.AgentCacheTotal.WithLabelValues("hit").Inc()
			return &a, nil
		}
	} else if err != redis.Nil {
		// Cache trouble is not a request failure; fall through to storage.
		c.log.Warn().Err(err).Int64("agent_id", id).Msg("agent cache read failed")
	}
	metrics.AgentCacheTotal.WithLabelValues("miss").Inc()

	agent, err := c.inner.Find(ctx, id)
	if err != nil || agent == nil {
		return agent, err
	}
	c.store(ctx, agent)
	return agent, nil
}

func (c *AgentCache) Create(ctx context.Context, a *domain.Agent) (*domain.Agent, error) {
	created, err := c.inner.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	c.store(ctx, created)
	return created, nil
}

func (c *AgentCache) FindAll(ctx context.Context) ([]domain.Agent, error) {
	return c.inner.FindAll(ctx)
}

func (c *AgentCache) Update(ctx context.Context, id int64, upd ports.AgentUpdate) (*domain.Agent, error) {
	updated, err := c.inner.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		c.store(ctx, updated)
	}
	return updated, nil
}

func (c *AgentCache) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := c.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
			c.log.Warn().Err(err).Int64("agent_id", id).Msg("agent cache invalidation failed")
		}
	}
	return deleted, nil
}

func (c *AgentCache) store(ctx context.Context, a *domain.Agent) {
	payload, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(a.ID), payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Int64("agent_id", a.ID).Msg("agent cache write failed")
	}
}
