package config

import (
	"class-booking/biz/infrastructure/util/log"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const defaultConfigPath = "etc/config.yaml"

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64 `json:",default=3600"`
}

type Payment struct {
	ServerKey  string
	Production bool `json:",optional"`
}

type RoleCache struct {
	// 秒, 不超过 Auth.AccessExpire
	Expire int64 `json:",default=300"`
}

// Cors 未配置来源时允许任意来源
type Cors struct {
	AllowOrigins []string `json:",optional"`
}

type Monitor struct {
	Addr string `json:",default=:9091"`
	Path string `json:",default=/metrics"`
}

type Config struct {
	service.ServiceConf
	ListenOn string `json:",default=:5000"`
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	Cache     cache.CacheConf
	Redis     *redis.RedisConf `json:",optional"`
	RoleCache RoleCache        `json:",optional"`
	Payment   Payment
	Cors      Cors    `json:",optional"`
	Monitor   Monitor `json:",optional"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	log.Info("NewConfig load config from path: %s", path)
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}

	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}

// RoleCacheExpire 角色缓存有效期, 不能长于令牌本身的有效期
func (c *Config) RoleCacheExpire() int {
	expire := c.RoleCache.Expire
	if c.Auth.AccessExpire > 0 && expire > c.Auth.AccessExpire {
		expire = c.Auth.AccessExpire
	}
	return int(expire)
}
