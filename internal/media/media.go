// Package media classifies the reference links attached to maintenance
// events: Google Drive file IDs, preview/thumbnail URL construction, and a
// best-effort image/video kind guess from the URL alone. The media hosts
// stay opaque; nothing here fetches anything.
package media

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/opsboard/opsboard/internal/model"
)

// Kind is the guessed media kind of a reference link.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Item is one processed media reference.
type Item struct {
	URL    string `json:"url"`
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	FileID string `json:"file_id,omitempty"`
}

var driveFileID = regexp.MustCompile(`/file/d/([a-zA-Z0-9-_]+)`)

// DriveFileID extracts the file ID from a Google Drive share link, or ""
// when the URL is not a Drive link.
func DriveFileID(url string) string {
	if !strings.Contains(url, "drive.google.com") {
		return ""
	}
	m := driveFileID.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// DrivePreviewURL builds the embeddable preview URL for a Drive file ID.
func DrivePreviewURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", fileID)
}

// DriveThumbnailURL builds the thumbnail URL for a Drive file ID.
func DriveThumbnailURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w400", fileID)
}

var videoExtensions = []string{
	".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mkv", ".m4v", ".3gp", ".ogv",
}

var imageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg", ".tiff", ".ico",
}

var videoPatterns = []string{
	"video", "movie", "film", "mp4", "avi", "mov", "webm",
	"youtube.com", "vimeo.com", "dailymotion.com",
}

var imagePatterns = []string{
	"image", "photo", "picture", "img", "jpeg", "jpg", "png", "gif",
	"pexels.com", "unsplash.com", "pixabay.com",
}

// DetectKind guesses whether a URL points at an image or a video.
// Extensions are checked before looser URL patterns, video before image;
// anything undecidable defaults to image.
func DetectKind(url string) Kind {
	if url == "" {
		return KindImage
	}
	lower := strings.ToLower(url)

	for _, ext := range videoExtensions {
		if strings.Contains(lower, ext) {
			return KindVideo
		}
	}
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return KindImage
		}
	}
	for _, p := range videoPatterns {
		if strings.Contains(lower, p) {
			return KindVideo
		}
	}
	for _, p := range imagePatterns {
		if strings.Contains(lower, p) {
			return KindImage
		}
	}
	return KindImage
}

// EventMedia gathers the populated before/after media slots of an event.
// Drive links are reduced to their file ID; other links pass through.
func EventMedia(ev model.Event) (records, solutions []Item) {
	for i, url := range ev.RecordLinks {
		if item, ok := buildItem(url, fmt.Sprintf("Registro del Problema %d", i+1)); ok {
			records = append(records, item)
		}
	}
	for i, url := range ev.SolutionLinks {
		if item, ok := buildItem(url, fmt.Sprintf("Registro de la Solución %d", i+1)); ok {
			solutions = append(solutions, item)
		}
	}
	return records, solutions
}

func buildItem(url, title string) (Item, bool) {
	if strings.TrimSpace(url) == "" {
		return Item{}, false
	}
	item := Item{
		URL:    url,
		Kind:   DetectKind(url),
		Title:  title,
		FileID: DriveFileID(url),
	}
	if item.FileID != "" {
		item.URL = item.FileID
	}
	return item, true
}
