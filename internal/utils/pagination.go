// internal/utils/pagination.go
package utils

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Sort     string `json:"sort"`
	Order    string `json:"order"`
	Search   string `json:"search"`
	Category string `json:"category"`
}

type PaginationResult struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}

// ListSpec describes how a resource is searched, categorised and sorted.
type ListSpec[T any] struct {
	SearchText func(T) []string
	Category   func(T) string
	SortFields map[string]func(a, b T) bool
}

func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	sortField := c.DefaultQuery("sort", "")
	order := c.DefaultQuery("order", "asc")
	search := c.Query("search")
	category := c.Query("category")

	// Validate and set defaults
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if order != "asc" && order != "desc" {
		order = "asc"
	}

	return PaginationParams{
		Page:     page,
		Limit:    limit,
		Sort:     sortField,
		Order:    order,
		Search:   search,
		Category: category,
	}
}

// ApplyListParams filters and sorts a snapshot in memory. Unknown sort
// fields keep the store order.
func ApplyListParams[T any](items []T, params PaginationParams, ls ListSpec[T]) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(params.Search))

	for _, item := range items {
		if params.Category != "" && ls.Category != nil && !strings.EqualFold(ls.Category(item), params.Category) {
			continue
		}
		if needle != "" && ls.SearchText != nil && !matchesSearch(ls.SearchText(item), needle) {
			continue
		}
		out = append(out, item)
	}

	if less, ok := ls.SortFields[params.Sort]; ok {
		sort.SliceStable(out, func(i, j int) bool {
			if params.Order == "desc" {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	}

	return out
}

func Paginate[T any](items []T, params PaginationParams) []T {
	offset := (params.Page - 1) * params.Limit
	if offset >= len(items) {
		return []T{}
	}
	end := offset + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func CreatePaginationResult(data interface{}, total int64, params PaginationParams) PaginationResult {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return PaginationResult{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
}

func matchesSearch(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
