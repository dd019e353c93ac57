package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveProfileImageWritesUnderUserDir(t *testing.T) {
	store := &ImageStore{Root: t.TempDir()}

	rel, err := store.SaveProfileImage(7, strings.NewReader("fake image bytes"), ".jpg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(rel, "images/profile_images/7/") {
		t.Fatalf("path = %q, want images/profile_images/7/ prefix", rel)
	}
	if !strings.HasSuffix(rel, ".jpg") {
		t.Fatalf("path = %q, want .jpg suffix", rel)
	}

	data, err := os.ReadFile(filepath.Join(store.Root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("content = %q", data)
	}
}

func TestSavePostImageUsesDistinctNames(t *testing.T) {
	store := &ImageStore{Root: t.TempDir()}

	first, err := store.SavePostImage(3, strings.NewReader("a"), ".png")
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	second, err := store.SavePostImage(3, strings.NewReader("b"), ".png")
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if first == second {
		t.Fatalf("two uploads share the path %q", first)
	}
}
