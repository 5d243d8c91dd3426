package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/domain"
	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./challenge.go -package=cachemocks -destination=mocks/challenge.mock.go ChallengeCache
type ChallengeCache interface {
	GetDetail(ctx context.Context, id int64) (domain.Challenge, error)
	SetDetail(ctx context.Context, c domain.Challenge) error
	DelDetail(ctx context.Context, id int64) error
}

type ChallengeECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewChallengeECache(c ecache.Cache) ChallengeCache {
	return &ChallengeECache{
		cache: &ecache.NamespaceCache{
			Namespace: "challenge:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (c *ChallengeECache) GetDetail(ctx context.Context, id int64) (domain.Challenge, error) {
	var res domain.Challenge
	err := c.cache.Get(ctx, c.detailKey(id)).JSONScan(&res)
	return res, err
}

func (c *ChallengeECache) SetDetail(ctx context.Context, ch domain.Challenge) error {
	data, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.detailKey(ch.ID), data, c.expiration)
}

func (c *ChallengeECache) DelDetail(ctx context.Context, id int64) error {
	_, err := c.cache.Delete(ctx, c.detailKey(id))
	return err
}

func (c *ChallengeECache) detailKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
