package repository

import (
	"context"
	"errors"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/models"

	"gorm.io/gorm"
)

// GormRelationshipStore implements RelationshipStore on top of gorm.
type GormRelationshipStore struct {
	DB *gorm.DB
}

var _ RelationshipStore = (*GormRelationshipStore)(nil)

func (s *GormRelationshipStore) Create(ctx context.Context, r *models.Relationship) error {
	return s.DB.WithContext(ctx).Create(r).Error
}

func (s *GormRelationshipStore) Get(ctx context.Context, low, high uint) (models.Relationship, error) {
	var rel models.Relationship
	err := s.DB.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&rel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Relationship{}, apperr.ErrNotFound
		}
		return models.Relationship{}, err
	}
	return rel, nil
}

func (s *GormRelationshipStore) UpdateState(ctx context.Context, low, high uint, from, to models.RelationState) (bool, error) {
	result := s.DB.WithContext(ctx).Model(&models.Relationship{}).
		Where("user_low_id = ? AND user_high_id = ? AND state = ?", low, high, from).
		Update("state", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormRelationshipStore) DeleteInState(ctx context.Context, low, high uint, state models.RelationState) (bool, error) {
	result := s.DB.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ? AND state = ?", low, high, state).
		Delete(&models.Relationship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormRelationshipStore) Friends(ctx context.Context, userID uint) ([]models.Relationship, error) {
	var rels []models.Relationship
	err := s.DB.WithContext(ctx).
		Where("state = ?", models.StateFriends).
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Preload("UserLow").Preload("UserHigh").
		Find(&rels).Error
	return rels, err
}

func (s *GormRelationshipStore) IncomingRequests(ctx context.Context, userID uint) ([]models.Relationship, error) {
	var rels []models.Relationship
	err := s.DB.WithContext(ctx).
		Where("(user_low_id = ? AND state = ?) OR (user_high_id = ? AND state = ?)",
			userID, models.StatePendingHighLow, userID, models.StatePendingLowHigh).
		Preload("UserLow").Preload("UserHigh").
		Order("updated_at DESC").
		Find(&rels).Error
	return rels, err
}

func (s *GormRelationshipStore) AreFriends(ctx context.Context, low, high uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Relationship{}).
		Where("user_low_id = ? AND user_high_id = ? AND state = ?", low, high, models.StateFriends).
		Count(&count).Error
	return count > 0, err
}
