package repositories

import (
	"context"
	"strings"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *models.User) error {
	return wrapStoreError(ctx, repo.db.WithContext(ctx).Create(user).Error)
}

func (repo *Users) GetByID(ctx context.Context, id uint) (*models.User, error) {

	var user models.User
	err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStoreError(ctx, err)
	}
	return &user, nil
}

func (repo *Users) GetByIDs(ctx context.Context, ids []uint) (map[uint]models.User, error) {

	var users []models.User
	if err := repo.db.WithContext(ctx).Find(&users, "id IN ?", ids).Error; err != nil {
		return nil, wrapStoreError(ctx, err)
	}

	byID := make(map[uint]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

func (repo *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {

	var user models.User
	err := repo.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStoreError(ctx, err)
	}
	return &user, nil
}

func (repo *Users) GetAll(ctx context.Context) ([]models.User, error) {

	var users []models.User
	if err := repo.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, wrapStoreError(ctx, err)
	}
	return users, nil
}

func (repo *Users) UpdatePostedJobs(ctx context.Context, id uint, list models.IDList) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("posted_jobs", list)
	return res.RowsAffected, wrapStoreError(ctx, res.Error)
}

func (repo *Users) UpdateApplications(ctx context.Context, id uint, list models.IDList) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("applications", list)
	return res.RowsAffected, wrapStoreError(ctx, res.Error)
}
