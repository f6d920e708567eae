package repositories

import (
	"context"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"gorm.io/gorm"
)

type Paths struct {
	db *gorm.DB
}

func NewPathsRepository(db *gorm.DB) *Paths {
	return &Paths{db: db}
}

func (repo *Paths) All(ctx context.Context) ([]entities.CareerPath, error) {

	var paths []entities.CareerPath
	if err := repo.db.WithContext(ctx).Find(&paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}
