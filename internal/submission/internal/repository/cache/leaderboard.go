package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/domain"
	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./leaderboard.go -package=cachemocks -destination=mocks/leaderboard.mock.go LeaderboardCache
type LeaderboardCache interface {
	Get(ctx context.Context, hackathonId int64) ([]domain.LeaderboardEntry, error)
	Set(ctx context.Context, hackathonId int64, entries []domain.LeaderboardEntry) error
	Del(ctx context.Context, hackathonId int64) error
}

type LeaderboardECache struct {
	cache ecache.Cache
	// 打分期间排行榜变得快，只缓存很短的时间
	expiration time.Duration
}

func NewLeaderboardECache(c ecache.Cache) LeaderboardCache {
	return &LeaderboardECache{
		cache: &ecache.NamespaceCache{
			Namespace: "submission:",
			C:         c,
		},
		expiration: time.Second * 30,
	}
}

func (c *LeaderboardECache) Get(ctx context.Context, hackathonId int64) ([]domain.LeaderboardEntry, error) {
	var res []domain.LeaderboardEntry
	err := c.cache.Get(ctx, c.key(hackathonId)).JSONScan(&res)
	return res, err
}

func (c *LeaderboardECache) Set(ctx context.Context, hackathonId int64, entries []domain.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(hackathonId), data, c.expiration)
}

func (c *LeaderboardECache) Del(ctx context.Context, hackathonId int64) error {
	_, err := c.cache.Delete(ctx, c.key(hackathonId))
	return err
}

func (c *LeaderboardECache) key(hackathonId int64) string {
	return fmt.Sprintf("leaderboard:%d", hackathonId)
}
