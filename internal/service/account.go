package service

import (
	"context"
	"strings"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, login and profile maintenance.
type AccountService struct {
	Users repository.UserStore
}

// Register creates a new account with a hashed password and the default
// avatar.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	usernameTaken, emailTaken, err := s.Users.UsernameOrEmailTaken(ctx, username, email, 0)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		return models.User{}, apperr.ErrUsernameTaken
	}
	if emailTaken {
		return models.User{}, apperr.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:         username,
		Email:            email,
		PasswordHash:     string(hashed),
		ProfileImagePath: models.DefaultProfileImagePath,
	}
	if err := s.Users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login authenticates by username or email.
func (s *AccountService) Login(ctx context.Context, login, password string) (models.User, error) {
	user, err := s.Users.ByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		return models.User{}, apperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, apperr.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile changes the caller's username and email, keeping the
// uniqueness invariants.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uint, username, email string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return models.User{}, apperr.NewValidationError(map[string]string{
			"profile": "username and email are required",
		})
	}

	user, err := s.Users.ByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	usernameTaken, emailTaken, err := s.Users.UsernameOrEmailTaken(ctx, username, email, userID)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		return models.User{}, apperr.ErrUsernameTaken
	}
	if emailTaken {
		return models.User{}, apperr.ErrEmailTaken
	}

	user.Username = username
	user.Email = email
	if err := s.Users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ChangePassword verifies the old password before storing the new hash.
func (s *AccountService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.Users.ByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return apperr.ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return apperr.NewValidationError(map[string]string{
			"password": "must be at least 8 characters",
		})
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	return s.Users.Update(ctx, &user)
}

// ByID fetches an account by id.
func (s *AccountService) ByID(ctx context.Context, userID uint) (models.User, error) {
	return s.Users.ByID(ctx, userID)
}

// ByUsername fetches an account by username.
func (s *AccountService) ByUsername(ctx context.Context, username string) (models.User, error) {
	return s.Users.ByUsername(ctx, username)
}

// Search finds users whose username or email contains query, excluding the
// caller, ordered by username.
func (s *AccountService) Search(ctx context.Context, query string, callerID uint, page, limit int) ([]models.User, int64, error) {
	return s.Users.Search(ctx, query, callerID, page, limit)
}

// SetProfileImage records a freshly stored avatar path.
func (s *AccountService) SetProfileImage(ctx context.Context, userID uint, path string) (models.User, error) {
	user, err := s.Users.ByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	user.ProfileImagePath = path
	if err := s.Users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
