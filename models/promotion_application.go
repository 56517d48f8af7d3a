package models

import "time"

// PromotionApplication ghi lại số tiền một khuyến mãi đang đóng góp vào một lịch giá.
// Mỗi cặp (lịch giá, khuyến mãi) chỉ có đúng một bản ghi; áp lại cùng khuyến mãi
// sẽ ghi đè số tiền chứ không tạo bản ghi mới.
type PromotionApplication struct {
	ID              uint          `gorm:"primaryKey"`
	PriceScheduleID uint          `gorm:"not null;uniqueIndex:idx_schedule_promotion"` // ID lịch giá
	PromotionID     uint          `gorm:"not null;uniqueIndex:idx_schedule_promotion"` // ID khuyến mãi
	DiscountAmount  float64       // Số tiền khuyến mãi này đang đóng góp
	CreatedAt       time.Time     `gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime"`
	PriceSchedule   PriceSchedule `gorm:"foreignKey:PriceScheduleID" json:"priceSchedule"`
	Promotion       Promotion     `gorm:"foreignKey:PromotionID" json:"promotion"`
}
