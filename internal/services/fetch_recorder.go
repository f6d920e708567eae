package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pathfinder-eg/pathfinder/internal/events"
	"github.com/pathfinder-eg/pathfinder/internal/logger"
	"github.com/pathfinder-eg/pathfinder/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type fetchRecordRepository interface {
	Record(ctx context.Context, record entities.FetchRecord) error
}

// FetchRecorder persists one row per live aggregation so operators can see
// which categories are requested and how the boards are holding up.
type FetchRecorder struct {
	records fetchRecordRepository
}

func NewFetchRecorder(bus EventBus.Bus, records fetchRecordRepository) (*FetchRecorder, error) {
	r := &FetchRecorder{records: records}
	if err := bus.Subscribe(events.JobsFetchedTopic, r.onJobsFetched); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FetchRecorder) onJobsFetched(event events.JobsFetched) {

	metrics.AggregationsCounter.Inc()

	err := r.records.Record(context.Background(), entities.FetchRecord{
		Category:     event.Category,
		ScrapedCount: event.ScrapedCount,
		StaticCount:  event.StaticCount,
		CreatedAt:    event.FetchedAt,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to record jobs fetch: %v", err)
	}
}
