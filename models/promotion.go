package models

import (
	"fmt"
	"time"

	"stayhub/constants"
)

// DateLayout là định dạng ngày dùng chung cho toàn hệ thống
const DateLayout = "02/01/2006"

type Promotion struct {
	ID               uint       `json:"id" gorm:"primaryKey"`            // ID cho khuyến mãi
	Name             string     `json:"name"`                            // Tên chương trình khuyến mãi
	Description      string     `json:"description"`                     // Mô tả chương trình
	Banner           string     `json:"banner"`                          // Ảnh banner của chương trình
	Type             int        `json:"type"`                            // Bên chịu chi phí: 1 provider, 2 system, 3 cả hai
	DiscountType     int        `json:"discountType"`                    // 1 phần trăm, 2 số tiền cố định
	DiscountValue    float64    `json:"discountValue"`                   // Mức giảm (<=100 nếu là phần trăm)
	MaxDiscount      *float64   `json:"maxDiscount"`                     // Trần số tiền giảm, chỉ dùng cho phần trăm
	MinPurchase      float64    `json:"minPurchase"`                     // Giá trị đơn tối thiểu (chỉ để hiển thị)
	StartDate        string     `json:"startDate"`                       // Ngày bắt đầu chương trình
	EndDate          string     `json:"endDate"`                         // Ngày kết thúc chương trình (tính cả ngày này)
	ApplicableHotels UintList   `json:"applicableHotels" gorm:"type:json"`
	ApplicableRooms  UintList   `json:"applicableRooms" gorm:"type:json"`
	ApplicableDates  StringList `json:"applicableDates" gorm:"type:json"`
	DayOfWeek        IntList    `json:"dayOfWeek" gorm:"type:json"` // 0 = Chủ nhật ... 6 = Thứ bảy
	Status           int        `json:"status" gorm:"default:1"`
	CreatedBy        uint       `json:"createdBy"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Promotion) ValidateStatusPromotion() error {
	if p.Status < 0 || p.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", p.Status)
	}
	return nil
}

// ParseStartDate đọc ngày bắt đầu theo DateLayout
func (p *Promotion) ParseStartDate() (time.Time, error) {
	return time.Parse(DateLayout, p.StartDate)
}

// ParseEndDate đọc ngày kết thúc theo DateLayout
func (p *Promotion) ParseEndDate() (time.Time, error) {
	return time.Parse(DateLayout, p.EndDate)
}

// IsExpiredAt kiểm tra khuyến mãi đã qua ngày kết thúc so với today chưa.
// Ngày kết thúc vẫn thuộc thời gian hiệu lực, chỉ hết hạn khi today vượt qua nó.
// Ngày kết thúc không đọc được coi như đã hết hạn để không áp nhầm khuyến mãi hỏng dữ liệu.
func (p *Promotion) IsExpiredAt(today time.Time) bool {
	endDate, err := p.ParseEndDate()
	if err != nil {
		return true
	}
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return endDate.Before(todayDate)
}

// IsActive kiểm tra khuyến mãi đang ở trạng thái hoạt động
func (p *Promotion) IsActive() bool {
	return p.Status == constants.PromotionStatusActive
}
