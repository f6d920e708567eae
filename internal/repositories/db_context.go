package repositories

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed seed/opportunities.json
var opportunitiesSeed []byte

//go:embed seed/paths.json
var pathsSeed []byte

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.Opportunity{})
	if err != nil {
		return fmt.Errorf("failed to migrate Opportunity entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.CareerPath{})
	if err != nil {
		return fmt.Errorf("failed to migrate CareerPath entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.FetchRecord{})
	if err != nil {
		return fmt.Errorf("failed to migrate FetchRecord entity: %w", err)
	}

	var opportunitiesCount int64
	if err = c.DB.Model(entities.Opportunity{}).Count(&opportunitiesCount).Error; err != nil {
		return fmt.Errorf("failed to count opportunities: %w", err)
	}

	if opportunitiesCount == 0 {
		if err = c.seedOpportunities(); err != nil {
			return fmt.Errorf("failed to seed opportunities: %w", err)
		}
	}

	var pathsCount int64
	if err = c.DB.Model(entities.CareerPath{}).Count(&pathsCount).Error; err != nil {
		return fmt.Errorf("failed to count career paths: %w", err)
	}

	if pathsCount == 0 {
		if err = c.seedPaths(); err != nil {
			return fmt.Errorf("failed to seed career paths: %w", err)
		}
	}

	return nil
}

type opportunitySeed struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	RequiredSkills    []string `json:"requiredSkills"`
	RecommendedMajors []string `json:"recommendedMajors"`
	ExperienceLevel   string   `json:"experienceLevel"`
	Organization      string   `json:"organization"`
	Location          string   `json:"location"`
	ApplicationURL    string   `json:"applicationUrl"`
	SalaryMin         int      `json:"salaryMin"`
	SalaryMax         int      `json:"salaryMax"`
	SalaryCurrency    string   `json:"salaryCurrency"`
}

func (c *DbContext) seedOpportunities() error {

	var seeds []opportunitySeed
	if err := json.Unmarshal(opportunitiesSeed, &seeds); err != nil {
		return fmt.Errorf("failed to parse opportunities seed: %w", err)
	}

	var opportunities []entities.Opportunity
	for _, seed := range seeds {
		opportunity := entities.NewOpportunity(seed.ID, seed.Title, seed.Category,
			seed.RequiredSkills, seed.RecommendedMajors,
			entities.CareerLevel(seed.ExperienceLevel), seed.Organization, seed.Location)
		opportunity.ApplicationURL = seed.ApplicationURL
		opportunity.SalaryMin = seed.SalaryMin
		opportunity.SalaryMax = seed.SalaryMax
		opportunity.SalaryCurrency = seed.SalaryCurrency
		opportunities = append(opportunities, opportunity)
	}

	if err := c.DB.Create(opportunities).Error; err != nil {
		return fmt.Errorf("failed to create opportunities in the database: %w", err)
	}
	return nil
}

type pathSeed struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	Keywords       []string `json:"keywords"`
}

func (c *DbContext) seedPaths() error {

	var seeds []pathSeed
	if err := json.Unmarshal(pathsSeed, &seeds); err != nil {
		return fmt.Errorf("failed to parse paths seed: %w", err)
	}

	var paths []entities.CareerPath
	for _, seed := range seeds {
		paths = append(paths, entities.CareerPath{
			ID:             seed.ID,
			Name:           seed.Name,
			Description:    seed.Description,
			RequiredSkills: strings.Join(seed.RequiredSkills, ","),
			Keywords:       strings.Join(seed.Keywords, ","),
		})
	}

	if err := c.DB.Create(paths).Error; err != nil {
		return fmt.Errorf("failed to create career paths in the database: %w", err)
	}
	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
