package statistics

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
	"github.com/EcoGuardHQ/EcoGuard/app/repository"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/cache"
)

const (
	CacheKeyReportsTotal   = "statistics:reports:total"
	CacheKeyReportsPending = "statistics:reports:pending"
	CacheKeyUsersTotal     = "statistics:users:total"
	CacheExpiration        = 30 * time.Minute
)

// StatisticsData holds the public counters shown on the landing page and map.
type StatisticsData struct {
	TotalReports   int64 `json:"total_reports"`
	PendingReports int64 `json:"pending_reports"`
	TotalUsers     int64 `json:"total_users"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached counters when the refresh
// interval has passed. Safe to call on every stats request.
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}

	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("Failed to update statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recomputes the counters from the database and
// writes them to the cache.
func UpdateStatisticsCache() error {
	repos := repository.GetGlobalRepositories()

	totalReports, err := repos.Report.Count()
	if err != nil {
		return err
	}
	pendingReports, err := repos.Report.CountByStatus(models.ReportStatusPending)
	if err != nil {
		return err
	}
	totalUsers, err := repos.User.Count()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := cache.GetClient()
	if err := client.Set(ctx, CacheKeyReportsTotal, totalReports, CacheExpiration).Err(); err != nil {
		return err
	}
	if err := client.Set(ctx, CacheKeyReportsPending, pendingReports, CacheExpiration).Err(); err != nil {
		return err
	}
	return client.Set(ctx, CacheKeyUsersTotal, totalUsers, CacheExpiration).Err()
}

// GetStatisticsData returns the counters, served from the cache when warm
// and recomputed from the database on a miss.
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	data := StatisticsData{}
	ctx := context.Background()
	client := cache.GetClient()

	cached := true
	if v, err := client.Get(ctx, CacheKeyReportsTotal).Result(); err == nil {
		data.TotalReports, _ = strconv.ParseInt(v, 10, 64)
	} else {
		cached = false
	}
	if v, err := client.Get(ctx, CacheKeyReportsPending).Result(); err == nil {
		data.PendingReports, _ = strconv.ParseInt(v, 10, 64)
	} else {
		cached = false
	}
	if v, err := client.Get(ctx, CacheKeyUsersTotal).Result(); err == nil {
		data.TotalUsers, _ = strconv.ParseInt(v, 10, 64)
	} else {
		cached = false
	}

	if cached {
		return data
	}

	// Cache miss, fall back to direct counts
	repos := repository.GetGlobalRepositories()
	if n, err := repos.Report.Count(); err == nil {
		data.TotalReports = n
	}
	if n, err := repos.Report.CountByStatus(models.ReportStatusPending); err == nil {
		data.PendingReports = n
	}
	if n, err := repos.User.Count(); err == nil {
		data.TotalUsers = n
	}
	return data
}
