package dto

import (
	"time"

	"stayhub/models"
)

// PromotionResponse là DTO cho response của promotion
type PromotionResponse struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Banner           string            `json:"banner"`
	Type             int               `json:"type"`
	DiscountType     int               `json:"discountType"`
	DiscountValue    float64           `json:"discountValue"`
	MaxDiscount      *float64          `json:"maxDiscount"`
	MinPurchase      float64           `json:"minPurchase"`
	StartDate        string            `json:"startDate"`
	EndDate          string            `json:"endDate"`
	ApplicableHotels models.UintList   `json:"applicableHotels"`
	ApplicableRooms  models.UintList   `json:"applicableRooms"`
	ApplicableDates  models.StringList `json:"applicableDates"`
	DayOfWeek        models.IntList    `json:"dayOfWeek"`
	Status           int               `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// CreatePromotionRequest là DTO cho yêu cầu tạo mới promotion
type CreatePromotionRequest struct {
	Name             string            `json:"name" binding:"required"`
	Description      string            `json:"description"`
	Banner           string            `json:"banner"`
	Type             int               `json:"type" binding:"required"`
	DiscountType     int               `json:"discountType" binding:"required"`
	DiscountValue    float64           `json:"discountValue" binding:"required"`
	MaxDiscount      *float64          `json:"maxDiscount"`
	MinPurchase      float64           `json:"minPurchase"`
	StartDate        string            `json:"startDate" binding:"required"`
	EndDate          string            `json:"endDate" binding:"required"`
	ApplicableHotels models.UintList   `json:"applicableHotels"`
	ApplicableRooms  models.UintList   `json:"applicableRooms"`
	ApplicableDates  models.StringList `json:"applicableDates"`
	DayOfWeek        models.IntList    `json:"dayOfWeek"`
	Status           *int              `json:"status"` // mặc định tạo ở trạng thái hoạt động
}

// UpdatePromotionRequest là DTO cho yêu cầu cập nhật promotion
type UpdatePromotionRequest struct {
	ID               uint              `json:"id" binding:"required"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Banner           string            `json:"banner"`
	DiscountValue    float64           `json:"discountValue"`
	MaxDiscount      *float64          `json:"maxDiscount"`
	MinPurchase      float64           `json:"minPurchase"`
	StartDate        string            `json:"startDate"`
	EndDate          string            `json:"endDate"`
	ApplicableHotels models.UintList   `json:"applicableHotels"`
	ApplicableRooms  models.UintList   `json:"applicableRooms"`
	ApplicableDates  models.StringList `json:"applicableDates"`
	DayOfWeek        models.IntList    `json:"dayOfWeek"`
}

// ChangePromotionStatusRequest là DTO cho yêu cầu chuyển trạng thái promotion
type ChangePromotionStatusRequest struct {
	ID uint `json:"id" binding:"required"`
}

// ApplyPromotionRequest là DTO cho yêu cầu áp khuyến mãi vào lịch giá
type ApplyPromotionRequest struct {
	ID uint `json:"id" binding:"required"`
}

// ApplyPromotionResponse trả về số lịch giá đã được cập nhật
type ApplyPromotionResponse struct {
	AffectedSchedules int `json:"affectedSchedules"`
}

// PromotionStatsResponse là DTO cho thống kê khuyến mãi trên dashboard
type PromotionStatsResponse struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Inactive     int64 `json:"inactive"`
	Expired      int64 `json:"expired"`
	Applications int64 `json:"applications"`
}
