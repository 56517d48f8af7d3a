package models

import "time"

// PriceSchedule là bản ghi giá theo từng (phòng, ngày) mà luồng tìm kiếm và đặt
// phòng đọc. Mỗi cặp (room_id, date) chỉ có đúng một bản ghi.
type PriceSchedule struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	RoomID                 uint      `json:"roomId" gorm:"uniqueIndex:idx_room_date"`
	Date                   time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_room_date"`
	BasePrice              float64   `json:"basePrice"`
	ProviderDiscountAmount float64   `json:"providerDiscountAmount"` // Tổng giảm giá do provider chịu
	SystemDiscountAmount   float64   `json:"systemDiscountAmount"`   // Tổng giảm giá do hệ thống chịu
	FinalPrice             float64   `json:"finalPrice"`
	AvailableRooms         int       `json:"availableRooms" gorm:"default:1"` // <= 0 nghĩa là phòng đã bị giữ/bán cho ngày này
	Refundable             bool      `json:"refundable"`
	PayLater               bool      `json:"payLater" gorm:"default:true"`
	IsAutoGenerated        bool      `json:"isAutoGenerated"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Room                   Room      `json:"room" gorm:"foreignKey:RoomID"`
}

// RecalculateFinalPrice cập nhật giá cuối từ giá gốc và hai quỹ giảm giá.
// Giá cuối không bao giờ âm.
func (s *PriceSchedule) RecalculateFinalPrice() {
	final := s.BasePrice - s.ProviderDiscountAmount - s.SystemDiscountAmount
	if final < 0 {
		final = 0
	}
	s.FinalPrice = final
}

// ResetAvailability đặt lại số phòng mở bán. available_rooms <= 0 nghĩa là phòng
// đã bị giữ hoặc bán cho ngày đó bởi luồng đặt phòng, tuyệt đối không được mở bán lại.
func (s *PriceSchedule) ResetAvailability(n int) {
	if s.AvailableRooms <= 0 {
		return
	}
	s.AvailableRooms = n
}
