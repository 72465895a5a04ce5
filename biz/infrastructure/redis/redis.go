package redis

import (
	"class-booking/biz/infrastructure/config"
	"sync"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var instance *redis.Redis
var once sync.Once

// GetRedis 构造一个Redis客户端, 未配置Redis时返回nil
func GetRedis(config *config.Config) *redis.Redis {
	once.Do(func() {
		if config.Redis == nil {
			return
		}
		instance = redis.MustNewRedis(*config.Redis)
	})
	return instance
}
