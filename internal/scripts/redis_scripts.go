// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoRedis is returned when a RedisScripts has no client.
var ErrNoRedis = errors.New("redis client not configured")

// RedisClient is the subset of a Redis client the scripts call.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) (int64, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// RedisScripts exposes key/value commands against a Redis server.
type RedisScripts struct {
	ScriptMethods
	Client RedisClient
}

func (r *RedisScripts) client() (RedisClient, error) {
	if r.Client == nil {
		return nil, ErrNoRedis
	}
	return r.Client, nil
}

// RedisGet returns the value stored under key.
func (r *RedisScripts) RedisGet(scope *ScriptScopeContext, key string) (string, error) {
	c, err := r.client()
	if err != nil {
		return "", err
	}
	v, err := c.Get(scope.Ctx(), key)
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// RedisSet stores value under key. A ttlSeconds of 0 or less keeps the key
// until deleted.
func (r *RedisScripts) RedisSet(scope *ScriptScopeContext, key, value string, ttlSeconds int) (StopExecution, error) {
	c, err := r.client()
	if err != nil {
		return StopExecution{}, err
	}
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	if err := c.Set(scope.Ctx(), key, value, ttl); err != nil {
		return StopExecution{}, fmt.Errorf("redis set %s: %w", key, err)
	}
	return StopExecution{}, nil
}

// RedisDel deletes keys and returns how many existed.
func (r *RedisScripts) RedisDel(scope *ScriptScopeContext, keys ...string) (int64, error) {
	c, err := r.client()
	if err != nil {
		return 0, err
	}
	n, err := c.Del(scope.Ctx(), keys...)
	if err != nil {
		return 0, fmt.Errorf("redis del: %w", err)
	}
	return n, nil
}

// RedisKeys returns the keys matching pattern.
func (r *RedisScripts) RedisKeys(scope *ScriptScopeContext, pattern string) ([]string, error) {
	c, err := r.client()
	if err != nil {
		return nil, err
	}
	keys, err := c.Keys(scope.Ctx(), pattern)
	if err != nil {
		return nil, fmt.Errorf("redis keys %s: %w", pattern, err)
	}
	return keys, nil
}
