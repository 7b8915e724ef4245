package main

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// fileMetadata holds the capture timestamp embedded in a media filename,
// plus the file's extension (without the leading dot).
type fileMetadata struct {
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Second    int
	Extension string
}

// grammar is one known filename layout. pattern captures year, month and day
// as its first three groups and hour, minute and second as the next three
// unless noTime is set. Ordinal and disambiguator suffixes are never captured.
type grammar struct {
	pattern *regexp.Regexp
	noTime  bool
}

// grammars lists the recognized naming conventions in priority order; the
// first structural match wins. Where two grammars can match the same name
// (the two PXL forms, the two dashed IMG forms) they extract identical
// fields, so the order only settles which grammar matches, never the result.
var grammars = []grammar{
	// 2021-01-01 01.01.01.jpg
	{pattern: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) (\d{2})\.(\d{2})\.(\d{2})\.\w+`)},
	// IMG_20210101_010101_123.jpg
	{pattern: regexp.MustCompile(`^IMG_(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})_\d+\.\w+`)},
	// PXL_20210101_010101123456.jpg
	{pattern: regexp.MustCompile(`^PXL_(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})\d+\.\w+`)},
	// Screenshot from 2021-01-01 01-01-01.png
	{pattern: regexp.MustCompile(`^Screenshot from (\d{4})-(\d{2})-(\d{2}) (\d{2})-(\d{2})-(\d{2})\.\w+`)},
	// VID_20210101_WA0000.mp4 — no time of day encoded, trailing digits are an ordinal
	{pattern: regexp.MustCompile(`^VID_(\d{4})(\d{2})(\d{2})_[A-Za-z]{2}\d{4}\.\w+`), noTime: true},
	// PXL_20210101_010101123.jpg
	{pattern: regexp.MustCompile(`^PXL_(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})\d{3}\.\w+`)},
	// IMG_2021-01-01-01-01-01-123.jpg
	{pattern: regexp.MustCompile(`^IMG_(\d{4})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-\d{3}\.\w+`)},
	// IMG_2021-01-01-01-01-01-123-1.jpg
	{pattern: regexp.MustCompile(`^IMG_(\d{4})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-\d{3}-\d+\.\w+`)},
	// 2021-01-01 01.01.01_123.jpg
	{pattern: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) (\d{2})\.(\d{2})\.(\d{2})_\d+\.\w+`)},
}

// parseFilename matches name against the known naming conventions and
// returns the timestamp it encodes. ok is false when no convention matches;
// such files are simply not candidates for renaming. Digit groups are taken
// as written, so a month of 13 comes back as 13.
func parseFilename(name string) (md fileMetadata, ok bool) {
	for _, g := range grammars {
		m := g.pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		md.Extension = extensionOf(name)
		md.Year, _ = strconv.Atoi(m[1])
		md.Month, _ = strconv.Atoi(m[2])
		md.Day, _ = strconv.Atoi(m[3])
		if !g.noTime {
			md.Hour, _ = strconv.Atoi(m[4])
			md.Minute, _ = strconv.Atoi(m[5])
			md.Second, _ = strconv.Atoi(m[6])
		}
		return md, true
	}
	return fileMetadata{}, false
}

// extensionOf returns the text after the final dot of name. The extension
// always comes from the filename's own suffix, not from a grammar capture,
// so names with extra dots in the stem still resolve correctly.
func extensionOf(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}
