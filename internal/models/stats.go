package models

import (
	"time"
)

type UsageStats struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CustomerID     uint      `json:"customer_id" gorm:"uniqueIndex;not null"`
	TotalViews     int       `json:"total_views" gorm:"default:0"`
	UniqueVisitors int       `json:"unique_visitors" gorm:"default:0"`
	MediaUploads   int       `json:"media_uploads" gorm:"default:0"`
	LastActivity   time.Time `json:"last_activity"`
}

// Counters are absolute values, not deltas; the dashboard reads, adjusts and
// writes back.
type UpdateStatsRequest struct {
	TotalViews     *int `json:"total_views" validate:"omitempty,gte=0"`
	UniqueVisitors *int `json:"unique_visitors" validate:"omitempty,gte=0"`
	MediaUploads   *int `json:"media_uploads" validate:"omitempty,gte=0"`
}

type UpdateStatsResponse struct {
	Stats   *UsageStats `json:"stats"`
	Message string      `json:"message"`
}
