package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cache ecache.Cache
	cmd   redis.Cmdable
)

func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(InitRedis()),
		Namespace: "skillsphere:",
	}
	return cache
}

func InitRedis() redis.Cmdable {
	if cmd != nil {
		return cmd
	}
	cmd = redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	return cmd
}
