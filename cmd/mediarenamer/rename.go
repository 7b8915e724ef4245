package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// confirmFunc decides whether a single planned rename goes ahead.
type confirmFunc func(src, dst string) bool

// autoApprove confirms every rename. Used with --yes and for dry runs.
func autoApprove(_, _ string) bool { return true }

// askConfirm prompts on w and reads a y/n answer from r for each rename.
// Anything other than y (or an input error) declines.
func askConfirm(r io.Reader, w io.Writer) confirmFunc {
	reader := bufio.NewReader(r)
	return func(src, dst string) bool {
		fmt.Fprintf(w, "Rename? %s -> %s (y/n): ", src, dst)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(line), "y")
	}
}

// renameFiles scans the immediate entries of cfg.Directory, parses each
// regular file's name, and renames recognized files to their canonical name.
// Names matching no known convention are skipped silently. Per-file failures
// are collected and returned as an aggregate; the remaining files are still
// processed.
func renameFiles(cfg config, logger zerolog.Logger, confirm confirmFunc) error {
	entries, err := os.ReadDir(cfg.Directory)
	if err != nil {
		return fmt.Errorf("listing directory %s: %w", cfg.Directory, err)
	}

	var errs []error
	var renamed, planned, declined, duplicates, failed int
	byCategory := make(map[mediaCategory]int)

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		md, ok := parseFilename(name)
		if !ok {
			logger.Debug().Str("file", name).Msg("no known naming convention")
			continue
		}
		byCategory[mediaCategoryForName(name)]++

		srcPath := filepath.Join(cfg.Directory, name)
		canonical := filepath.Join(cfg.Directory, canonicalFilename(md))
		if cfg.ChecksumDuplicates && exists(canonical) && isDuplicateOf(srcPath, canonical) {
			duplicates++
			logger.Info().Str("file", srcPath).Str("existing", canonical).
				Msg("identical content already at canonical name")
			continue
		}

		destPath, err := uniqueDestPath(cfg.Directory, md)
		if err != nil {
			failed++
			errs = append(errs, fmt.Errorf("%s: %w", srcPath, err))
			logger.Error().Str("file", srcPath).Err(err).Msg("cannot plan rename")
			continue
		}

		if !cfg.Rename {
			planned++
			logger.Info().Str("from", srcPath).Str("to", destPath).Msg("would rename (dry run)")
			continue
		}

		if !confirm(srcPath, destPath) {
			declined++
			logger.Debug().Str("file", srcPath).Msg("rename declined")
			continue
		}

		if err := os.Rename(srcPath, destPath); err != nil {
			failed++
			errs = append(errs, fmt.Errorf("renaming %s: %w", srcPath, err))
			logger.Error().Str("file", srcPath).Err(err).Msg("rename failed")
			continue
		}

		renamed++
		logger.Info().Str("from", srcPath).Str("to", destPath).Msg("renamed")
	}

	summary := logger.Info().
		Int("renamed", renamed).
		Int("planned", planned).
		Int("declined", declined).
		Int("duplicates", duplicates).
		Int("failed", failed)
	for category, count := range byCategory {
		summary = summary.Int(string(category), count)
	}
	summary.Msg("run summary")

	return errors.Join(errs...)
}
