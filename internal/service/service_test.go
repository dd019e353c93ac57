package service

import (
	"context"
	"testing"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:         username,
		Email:            username + "@example.com",
		PasswordHash:     "x",
		ProfileImagePath: models.DefaultProfileImagePath,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func newRelationshipService(db *gorm.DB) *RelationshipService {
	return &RelationshipService{
		Users:         &repository.GormUserStore{DB: db},
		Relationships: &repository.GormRelationshipStore{DB: db},
	}
}

func newPostService(db *gorm.DB) *PostService {
	return &PostService{
		Posts:         &repository.GormPostStore{DB: db},
		Users:         &repository.GormUserStore{DB: db},
		Relationships: &repository.GormRelationshipStore{DB: db},
	}
}

func newChatService(db *gorm.DB) *ChatService {
	return &ChatService{
		Users:         &repository.GormUserStore{DB: db},
		Messages:      &repository.GormChatMessageStore{DB: db},
		Relationships: &repository.GormRelationshipStore{DB: db},
	}
}

func makeFriends(t *testing.T, svc *RelationshipService, a, b models.User) {
	t.Helper()
	ctx := context.Background()
	if err := svc.SendRequest(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.AcceptRequest(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("accept request: %v", err)
	}
}
