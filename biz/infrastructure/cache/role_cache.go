package cache

import (
	"class-booking/biz/infrastructure/config"
	"class-booking/biz/infrastructure/redis"
	"context"
	"errors"
	"fmt"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	roleCachePrefix = "role"
	// 角色未设置时的占位值, 区分于缓存未命中
	unsetRole = "-"
)

var ErrCacheMiss = errors.New("cache miss")

type IRoleCacheMapper interface {
	Get(ctx context.Context, email string) (string, error)
	Set(ctx context.Context, email string, role string) error
	Delete(ctx context.Context, email string) error
}

// RoleCacheMapper 以邮箱为键缓存用户角色, 未配置Redis时所有操作都是空操作
type RoleCacheMapper struct {
	rds    *gozero_redis.Redis
	expire int
}

func NewRoleCacheMapper(config *config.Config) *RoleCacheMapper {
	return &RoleCacheMapper{
		rds:    redis.GetRedis(config),
		expire: config.RoleCacheExpire(),
	}
}

func (m *RoleCacheMapper) enabled() bool {
	return m.rds != nil && m.expire > 0
}

func (m *RoleCacheMapper) Get(ctx context.Context, email string) (string, error) {
	if !m.enabled() {
		return "", ErrCacheMiss
	}
	role, err := m.rds.GetCtx(ctx, m.buildCacheKey(email))
	if err != nil {
		return "", err
	}
	switch role {
	case "":
		return "", ErrCacheMiss
	case unsetRole:
		return "", nil
	default:
		return role, nil
	}
}

func (m *RoleCacheMapper) Set(ctx context.Context, email string, role string) error {
	if !m.enabled() {
		return nil
	}
	if role == "" {
		role = unsetRole
	}
	return m.rds.SetexCtx(ctx, m.buildCacheKey(email), role, m.expire)
}

func (m *RoleCacheMapper) Delete(ctx context.Context, email string) error {
	if !m.enabled() {
		return nil
	}
	_, err := m.rds.DelCtx(ctx, m.buildCacheKey(email))
	return err
}

func (m *RoleCacheMapper) buildCacheKey(email string) string {
	return fmt.Sprintf("%s:%s", roleCachePrefix, email)
}
