package main

import "testing"

func TestMediaCategoryForName(t *testing.T) {
	tests := []struct {
		name string
		want mediaCategory
	}{
		{"2021-01-01 01.01.01.jpg", categoryPicture},
		{"Screenshot from 2021-01-01 01-01-01.png", categoryPicture},
		{"IMG_20210101_010101_123.JPG", categoryPicture},
		{"PXL_20210101_010101123.dng", categoryRawPicture},
		{"VID_20210101_WA0000.mp4", categoryVideo},
		{"clip.MOV", categoryVideo},
		{"document.pdf", categoryOther},
		{"no-extension", categoryOther},
	}

	for _, tt := range tests {
		if got := mediaCategoryForName(tt.name); got != tt.want {
			t.Errorf("mediaCategoryForName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
