package services

import (
	"context"

	"holidayapi/constants"

	"github.com/redis/go-redis/v9"
)

// CacheWarmer refreshes the cached holiday list. Used by the nightly cron
// job; a nil Redis client makes it a no-op.
type CacheWarmer struct {
	service *HolidayService
	rdb     *redis.Client
}

func NewCacheWarmer(service *HolidayService, rdb *redis.Client) *CacheWarmer {
	return &CacheWarmer{
		service: service,
		rdb:     rdb,
	}
}

func (w *CacheWarmer) RefreshHolidayCache() error {
	if w.rdb == nil {
		return nil
	}
	holidays, err := w.service.GetAllHolidays()
	if err != nil {
		return err
	}
	if len(holidays) == 0 {
		return DeleteFromRedis(context.Background(), w.rdb, constants.HolidayCacheKey)
	}
	return SetToRedis(context.Background(), w.rdb, constants.HolidayCacheKey, holidays, constants.HolidayCacheTTL)
}
