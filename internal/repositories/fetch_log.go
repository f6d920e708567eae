package repositories

import (
	"context"
	"time"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"gorm.io/gorm"
)

type FetchLog struct {
	db *gorm.DB
}

func NewFetchLogRepository(db *gorm.DB) *FetchLog {
	return &FetchLog{db: db}
}

func (repo *FetchLog) Record(ctx context.Context, record entities.FetchRecord) error {
	return repo.db.WithContext(ctx).Create(&record).Error
}

func (repo *FetchLog) ByCategory(ctx context.Context, category string) ([]entities.FetchRecord, error) {

	var records []entities.FetchRecord
	if err := repo.db.WithContext(ctx).Find(&records, "category = ?", category).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *FetchLog) RemoveOldRecords(ctx context.Context, before time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.FetchRecord{}, "created_at < ?", before)
	return res.RowsAffected, res.Error
}
