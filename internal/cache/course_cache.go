// Package cache keeps recently served courses in Redis so repeated quiz
// loads skip the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/courseboard/config"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CourseCache is a best-effort store. Failures are logged and treated as
// misses, never surfaced to callers.
type CourseCache interface {
	Get(ctx context.Context, id string) (*model.Course, bool)
	Set(ctx context.Context, course *model.Course)
	Invalidate(ctx context.Context, id string)
	Close() error
}

const keyPrefix = "course:"

func courseKey(id string) string {
	return keyPrefix + id
}

type redisCourseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCourseCache returns a Redis-backed cache, or a no-op one when no Redis
// address is configured.
func NewCourseCache(cfg *config.Config) CourseCache {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, course cache disabled")
		return NopCourseCache{}
	}
	opts, err := redis.ParseURL(cfg.Redis.Addr)
	if err != nil {
		opts = &redis.Options{Addr: cfg.Redis.Addr}
	}
	return NewRedisCourseCache(redis.NewClient(opts), cfg.Redis.TTL)
}

func NewRedisCourseCache(rdb *redis.Client, ttl time.Duration) CourseCache {
	return &redisCourseCache{rdb: rdb, ttl: ttl}
}

func (c *redisCourseCache) Get(ctx context.Context, id string) (*model.Course, bool) {
	raw, err := c.rdb.Get(ctx, courseKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("courseID", id).Msg("Course cache read failed")
		}
		return nil, false
	}
	var course model.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		log.Warn().Err(err).Str("courseID", id).Msg("Discarding undecodable cached course")
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &course, true
}

func (c *redisCourseCache) Set(ctx context.Context, course *model.Course) {
	data, err := json.Marshal(course)
	if err != nil {
		log.Warn().Err(err).Str("courseID", course.ID).Msg("Course cache encode failed")
		return
	}
	if err := c.rdb.Set(ctx, courseKey(course.ID), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("courseID", course.ID).Msg("Course cache write failed")
	}
}

func (c *redisCourseCache) Invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, courseKey(id)).Err(); err != nil {
		log.Warn().Err(err).Str("courseID", id).Msg("Course cache invalidation failed")
	}
}

func (c *redisCourseCache) Close() error {
	if err := c.rdb.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}

// NopCourseCache never stores anything.
type NopCourseCache struct{}

func (NopCourseCache) Get(context.Context, string) (*model.Course, bool) { return nil, false }
func (NopCourseCache) Set(context.Context, *model.Course)                {}
func (NopCourseCache) Invalidate(context.Context, string)                {}
func (NopCourseCache) Close() error                                      { return nil }
