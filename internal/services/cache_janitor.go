package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type fetchLogCleanupRepository interface {
	RemoveOldRecords(ctx context.Context, before time.Time) (int64, error)
}

// CacheJanitor periodically drops expired aggregator cache entries and old
// fetch-log rows. The system stays correct without it; it only bounds growth.
type CacheJanitor struct {
	cache           *JobsCache
	fetchLog        fetchLogCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewCacheJanitor(cache *JobsCache, fetchLog fetchLogCleanupRepository, retentionInDays int) (*CacheJanitor, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	j := &CacheJanitor{
		cache:           cache,
		fetchLog:        fetchLog,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := j.cron.AddFunc("@every 1h", j.clean)
	if err != nil {
		return nil, err
	}

	j.cron.Start()
	log.Infof("cache janitor started, fetch log retention in days: %d", j.retentionInDays)
	return j, nil
}

func (j *CacheJanitor) Stop() {
	j.cron.Stop()
}

func (j *CacheJanitor) clean() {
	purged := j.cache.PurgeExpired()

	cutoff := time.Now().Add(-time.Duration(j.retentionInDays) * 24 * time.Hour)
	rowsAffected, err := j.fetchLog.RemoveOldRecords(context.Background(), cutoff)
	if err != nil {
		log.Errorf("failed to clean old fetch records: %v", err)
	} else {
		log.Infof("janitor pass finished, purged cache entries: %v, removed fetch records: %v", purged, rowsAffected)
	}
}
