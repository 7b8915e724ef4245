package main

import (
	"path/filepath"
	"strings"
)

type mediaCategory string

const (
	categoryPicture    mediaCategory = "pictures"
	categoryRawPicture mediaCategory = "raw_pictures"
	categoryVideo      mediaCategory = "videos"
	categoryOther      mediaCategory = "other"
)

var extensionToCategory = map[string]mediaCategory{
	"jpg": categoryPicture, "jpeg": categoryPicture, "png": categoryPicture,
	"gif": categoryPicture, "bmp": categoryPicture, "tiff": categoryPicture,
	"tif": categoryPicture, "webp": categoryPicture, "heic": categoryPicture,
	"heif": categoryPicture,

	"arw": categoryRawPicture, "cr2": categoryRawPicture, "cr3": categoryRawPicture,
	"dng": categoryRawPicture, "nef": categoryRawPicture, "orf": categoryRawPicture,
	"raf": categoryRawPicture, "rw2": categoryRawPicture,

	"mp4": categoryVideo, "mov": categoryVideo, "avi": categoryVideo,
	"mkv": categoryVideo, "webm": categoryVideo, "m4v": categoryVideo,
	"3gp": categoryVideo, "mts": categoryVideo, "m2ts": categoryVideo,
}

// mediaCategoryForName classifies name by its extension, case-insensitively.
// The category only feeds logging and the run summary; files with
// unrecognized extensions are categorized as "other" and are still offered
// to the parser.
func mediaCategoryForName(name string) mediaCategory {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if category, ok := extensionToCategory[ext]; ok {
		return category
	}
	return categoryOther
}
