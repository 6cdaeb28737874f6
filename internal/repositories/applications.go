package repositories

import (
	"context"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *models.Application) error {
	return wrapStoreError(ctx, repo.db.WithContext(ctx).Create(application).Error)
}

func (repo *Applications) GetByID(ctx context.Context, id uint) (*models.Application, error) {

	var application models.Application
	err := repo.db.WithContext(ctx).First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStoreError(ctx, err)
	}
	return &application, nil
}

func (repo *Applications) GetByJobAndCandidate(ctx context.Context, jobID, candidateID uint) (*models.Application, error) {

	var application models.Application
	err := repo.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStoreError(ctx, err)
	}
	return &application, nil
}

func (repo *Applications) GetByCandidate(ctx context.Context, candidateID uint) ([]models.Application, error) {

	var applications []models.Application
	err := repo.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, wrapStoreError(ctx, err)
	}
	return applications, nil
}

func (repo *Applications) GetByIDs(ctx context.Context, ids []uint) ([]models.Application, error) {

	var applications []models.Application
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, wrapStoreError(ctx, err)
	}
	return applications, nil
}

func (repo *Applications) GetAll(ctx context.Context) ([]models.Application, error) {

	var applications []models.Application
	if err := repo.db.WithContext(ctx).Find(&applications).Error; err != nil {
		return nil, wrapStoreError(ctx, err)
	}
	return applications, nil
}

func (repo *Applications) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error {
	return wrapStoreError(ctx, repo.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).Update("status", status).Error)
}
