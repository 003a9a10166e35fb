// Package listing implements the in-memory filter/paginate engine for asset
// collections. It is pure: given a snapshot of assets and the current view
// parameters it returns the filtered page plus tab counts, with no side
// effects.
package listing

import (
	"math"
	"strings"

	"renotrack/internal/models"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// DefaultPageSize is used when the caller passes a non-positive page size.
const DefaultPageSize = 20

// Result is a filtered, counted, paged view over an asset collection.
type Result struct {
	Assets []models.Asset `json:"assets"`

	// StatusCounts is computed over the unfiltered input (one count per
	// status plus "all"), so the UI can show every tab count regardless of
	// the active filter.
	StatusCounts map[string]int `json:"status_counts"`

	TotalItems int `json:"total_items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// FilterAndPaginate filters assets by status and free-text query, then
// slices out the requested page.
//
// The query matches case-insensitively against name or title deed number
// and is AND-combined with the status filter. Zero filtered results yield
// TotalPages 0. A requested page beyond the filtered range resets to page 1
// rather than returning an empty window, which covers the "filter changed
// while on a late page" case.
func FilterAndPaginate(assets []models.Asset, statusFilter, query string, page, pageSize int) Result {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	counts := statusCounts(assets)

	filtered := make([]models.Asset, 0, len(assets))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, asset := range assets {
		if statusFilter != "" && statusFilter != StatusFilterAll && string(asset.Status) != statusFilter {
			continue
		}
		if needle != "" && !matchesQuery(&asset, needle) {
			continue
		}
		filtered = append(filtered, asset)
	}

	totalPages := int(math.Ceil(float64(len(filtered)) / float64(pageSize)))
	if page < 1 || (totalPages > 0 && page > totalPages) {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Assets:       filtered[start:end],
		StatusCounts: counts,
		TotalItems:   len(filtered),
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
}

func matchesQuery(asset *models.Asset, needle string) bool {
	return strings.Contains(strings.ToLower(asset.Name), needle) ||
		strings.Contains(strings.ToLower(asset.TitleDeedNumber), needle)
}

func statusCounts(assets []models.Asset) map[string]int {
	counts := make(map[string]int, len(models.AllAssetStatuses)+1)
	counts[StatusFilterAll] = len(assets)
	for _, status := range models.AllAssetStatuses {
		counts[string(status)] = 0
	}
	for _, asset := range assets {
		counts[string(asset.Status)]++
	}
	return counts
}
