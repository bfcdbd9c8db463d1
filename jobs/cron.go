package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// CacheRefresher re-warms the holiday list cache.
type CacheRefresher interface {
	RefreshHolidayCache() error
}

var cacheRefresher CacheRefresher

// SetCacheRefresher installs the implementation used by the nightly job.
func SetCacheRefresher(refresher CacheRefresher) {
	cacheRefresher = refresher
}

// InitCronJobs registers and starts the scheduled jobs.
func InitCronJobs(c *cron.Cron) error {
	// Midnight refresh: the current-year date rule means cached entries may
	// go stale across a year boundary.
	_, err := c.AddFunc("0 0 * * *", func() {
		if cacheRefresher == nil {
			return
		}
		if err := cacheRefresher.RefreshHolidayCache(); err != nil {
			log.Printf("Error refreshing holiday cache: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
