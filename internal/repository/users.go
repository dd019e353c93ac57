package repository

import (
	"context"
	"errors"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/models"

	"gorm.io/gorm"
)

// GormUserStore implements UserStore on top of gorm.
type GormUserStore struct {
	DB *gorm.DB
}

var _ UserStore = (*GormUserStore)(nil)

func (s *GormUserStore) Create(ctx context.Context, u *models.User) error {
	return s.DB.WithContext(ctx).Create(u).Error
}

func (s *GormUserStore) ByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *GormUserStore) ByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *GormUserStore) ByLogin(ctx context.Context, login string) (models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("username = ? OR email = ?", login, login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *GormUserStore) UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID uint) (bool, bool, error) {
	var users []models.User
	query := s.DB.WithContext(ctx).Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Find(&users).Error; err != nil {
		return false, false, err
	}
	var usernameTaken, emailTaken bool
	for _, u := range users {
		if u.Username == username {
			usernameTaken = true
		}
		if u.Email == email {
			emailTaken = true
		}
	}
	return usernameTaken, emailTaken, nil
}

func (s *GormUserStore) Update(ctx context.Context, u *models.User) error {
	return s.DB.WithContext(ctx).Save(u).Error
}

func (s *GormUserStore) Search(ctx context.Context, query string, excludeID uint, page, limit int) ([]models.User, int64, error) {
	pattern := "%" + query + "%"
	base := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id <> ?", excludeID).
		Where("LOWER(username) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	offset := (page - 1) * limit
	if err := base.Order("username ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
