// Package dto defines data transfer objects for API requests and responses.
package dto

// CategoryListResponse represents the response body for the category directory.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
