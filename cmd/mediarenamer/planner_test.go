package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalFilename(t *testing.T) {
	tests := []struct {
		md   fileMetadata
		want string
	}{
		{fileMetadata{2021, 1, 1, 1, 1, 1, "jpg"}, "2021-01-01_01-01-01.jpg"},
		{fileMetadata{2023, 12, 24, 18, 30, 59, "mp4"}, "2023-12-24_18-30-59.mp4"},
		{fileMetadata{999, 2, 3, 4, 5, 6, "png"}, "0999-02-03_04-05-06.png"},
	}

	for _, tt := range tests {
		if got := canonicalFilename(tt.md); got != tt.want {
			t.Errorf("canonicalFilename(%+v) = %q, want %q", tt.md, got, tt.want)
		}
	}
}

func TestCanonicalFilenameDistinguishesFields(t *testing.T) {
	base := fileMetadata{2021, 1, 1, 1, 1, 1, "jpg"}
	variants := []fileMetadata{
		{2022, 1, 1, 1, 1, 1, "jpg"},
		{2021, 2, 1, 1, 1, 1, "jpg"},
		{2021, 1, 2, 1, 1, 1, "jpg"},
		{2021, 1, 1, 2, 1, 1, "jpg"},
		{2021, 1, 1, 1, 2, 1, "jpg"},
		{2021, 1, 1, 1, 1, 2, "jpg"},
		{2021, 1, 1, 1, 1, 1, "png"},
	}

	baseName := canonicalFilename(base)
	for _, v := range variants {
		if canonicalFilename(v) == baseName {
			t.Errorf("canonicalFilename(%+v) collides with %+v", v, base)
		}
	}
}

func TestUniqueDestPath(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test")
	if err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	md := fileMetadata{2021, 1, 1, 1, 1, 1, "jpg"}

	// Empty directory: the canonical name itself is free
	got, err := uniqueDestPath(tempDir, md)
	if err != nil {
		t.Fatalf("uniqueDestPath failed: %v", err)
	}
	want := filepath.Join(tempDir, "2021-01-01_01-01-01.jpg")
	if got != want {
		t.Errorf("uniqueDestPath = %q, want %q", got, want)
	}

	// Planning creates nothing, so a second call yields the same path
	again, err := uniqueDestPath(tempDir, md)
	if err != nil {
		t.Fatalf("uniqueDestPath failed: %v", err)
	}
	if again != got {
		t.Errorf("uniqueDestPath not stable: %q then %q", got, again)
	}

	// Canonical name taken: first suffixed variant
	if err := os.WriteFile(want, nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err = uniqueDestPath(tempDir, md)
	if err != nil {
		t.Fatalf("uniqueDestPath failed: %v", err)
	}
	want = filepath.Join(tempDir, "2021-01-01_01-01-01_1.jpg")
	if got != want {
		t.Errorf("uniqueDestPath = %q, want %q", got, want)
	}

	// Suffixes fill in increasing order
	if err := os.WriteFile(want, nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err = uniqueDestPath(tempDir, md)
	if err != nil {
		t.Fatalf("uniqueDestPath failed: %v", err)
	}
	want = filepath.Join(tempDir, "2021-01-01_01-01-01_2.jpg")
	if got != want {
		t.Errorf("uniqueDestPath = %q, want %q", got, want)
	}
}

func TestUniqueDestPathExhausted(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test")
	if err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	md := fileMetadata{2021, 1, 1, 1, 1, 1, "jpg"}

	if err := os.WriteFile(filepath.Join(tempDir, "2021-01-01_01-01-01.jpg"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= maxSuffixAttempts; i++ {
		name := fmt.Sprintf("2021-01-01_01-01-01_%d.jpg", i)
		if err := os.WriteFile(filepath.Join(tempDir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	_, err = uniqueDestPath(tempDir, md)
	if !errors.Is(err, errNoUniqueName) {
		t.Errorf("expected errNoUniqueName, got %v", err)
	}
}

func TestIsDuplicateOf(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test")
	if err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	src := filepath.Join(tempDir, "src.jpg")
	same := filepath.Join(tempDir, "same.jpg")
	differentSize := filepath.Join(tempDir, "different-size.jpg")
	sameSize := filepath.Join(tempDir, "same-size.jpg")

	if err := os.WriteFile(src, []byte("photo data"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(same, []byte("photo data"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(differentSize, []byte("other"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sameSize, []byte("photo atad"), 0644); err != nil {
		t.Fatal(err)
	}

	if !isDuplicateOf(src, same) {
		t.Error("identical files not reported as duplicates")
	}
	if isDuplicateOf(src, differentSize) {
		t.Error("files of different sizes reported as duplicates")
	}
	if isDuplicateOf(src, sameSize) {
		t.Error("same-size files with different content reported as duplicates")
	}
	if isDuplicateOf(src, filepath.Join(tempDir, "missing.jpg")) {
		t.Error("missing destination reported as duplicate")
	}
}
