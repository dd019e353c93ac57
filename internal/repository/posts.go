package repository

import (
	"context"

	"socialnet/backend/internal/models"

	"gorm.io/gorm"
)

// GormPostStore implements PostStore on top of gorm.
type GormPostStore struct {
	DB *gorm.DB
}

var _ PostStore = (*GormPostStore)(nil)

func (s *GormPostStore) Create(ctx context.Context, p *models.Post) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *GormPostStore) ByOwners(ctx context.Context, ownerIDs []uint) ([]models.Post, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	var posts []models.Post
	err := s.DB.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Preload("Owner").
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}
