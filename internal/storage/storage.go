package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore writes uploaded images below a root directory and hands back
// the relative path that gets stored on the owning record.
type ImageStore struct {
	Root string
}

// SaveProfileImage stores a user's avatar under profile_images/{userID}/.
func (s *ImageStore) SaveProfileImage(userID uint, r io.Reader, ext string) (string, error) {
	dir := filepath.Join("images", "profile_images", fmt.Sprint(userID))
	return s.save(dir, r, ext)
}

// SavePostImage stores a post image under post_images/{ownerID}/.
func (s *ImageStore) SavePostImage(ownerID uint, r io.Reader, ext string) (string, error) {
	dir := filepath.Join("images", "post_images", fmt.Sprint(ownerID))
	return s.save(dir, r, ext)
}

func (s *ImageStore) save(dir string, r io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(filepath.Join(s.Root, dir), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}
	name := uuid.NewString() + ext
	rel := filepath.ToSlash(filepath.Join(dir, name))

	f, err := os.Create(filepath.Join(s.Root, dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("storage: write: %w", err)
	}
	return rel, nil
}
