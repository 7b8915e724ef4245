package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// errNoUniqueName is returned when the canonical name and every suffixed
// variant up to maxSuffixAttempts are already taken.
var errNoUniqueName = errors.New("no unique filename available")

const maxSuffixAttempts = 99

// canonicalFilename formats md as YYYY-MM-DD_HH-MM-SS.<ext>, zero-padded.
func canonicalFilename(md fileMetadata) string {
	return fmt.Sprintf("%04d-%02d-%02d_%02d-%02d-%02d.%s",
		md.Year, md.Month, md.Day, md.Hour, md.Minute, md.Second, md.Extension)
}

// uniqueDestPath returns the first free path in dir for md: the canonical
// name if nothing occupies it, otherwise _1 through _99 suffixed variants in
// order. The probe and the eventual rename are not atomic; callers must not
// run concurrently against the same directory.
func uniqueDestPath(dir string, md fileMetadata) (string, error) {
	base := canonicalFilename(md)
	fullPath := filepath.Join(dir, base)
	if !exists(fullPath) {
		return fullPath, nil
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 1; i <= maxSuffixAttempts; i++ {
		fullPath = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if !exists(fullPath) {
			return fullPath, nil
		}
	}

	return "", errNoUniqueName
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// isDuplicateOf reports whether srcPath and destPath hold identical content.
// Sizes are compared before either file is hashed. Any I/O failure counts as
// not-a-duplicate so the caller falls through to normal collision handling.
func isDuplicateOf(srcPath, destPath string) bool {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return false
	}
	destInfo, err := os.Stat(destPath)
	if err != nil {
		return false
	}
	if srcInfo.Size() != destInfo.Size() {
		return false
	}

	srcSum, err := fileChecksum(srcPath)
	if err != nil {
		return false
	}
	destSum, err := fileChecksum(destPath)
	if err != nil {
		return false
	}
	return srcSum == destSum
}

func fileChecksum(path string) (uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		return 0, err
	}

	return hash.Sum64(), nil
}
