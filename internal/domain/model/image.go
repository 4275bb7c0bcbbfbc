// Package model contains domain models passed between layers.
package model

// Attribution constants applied to every collected image.
const (
	SourceLabel = "Wikimedia Commons"
	LicenseNote = "See source page"
)

// Image is a single gallery image discovered through the media search
// service. ID is the page identifier and is the image's identity: two
// images with the same ID are the same logical image.
type Image struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	PageURL   string `json:"page_url"`
	Thumbnail string `json:"thumbnail"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Source    string `json:"source"`
	License   string `json:"license"`
}
