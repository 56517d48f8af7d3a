package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Hotel struct {
	ID               uint            `json:"id" gorm:"primaryKey"` // ID cho khách sạn
	UserID           uint            `json:"userId"`               // ID của chủ khách sạn
	Name             string          `json:"name"`                 // Tên khách sạn
	Address          string          `json:"address"`              // Địa chỉ khách sạn
	Avatar           string          `json:"avatar"`               // Avatar khách sạn
	Img              json.RawMessage `json:"img" gorm:"type:json"` // Hình ảnh khách sạn
	ShortDescription string          `json:"shortDescription"`     // Mô tả ngắn
	Description      string          `json:"description"`          // Mô tả chi tiết
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	Status           int             `json:"status" gorm:"default:1"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomTypes        []RoomType      `json:"roomTypes" gorm:"foreignKey:HotelID"` // Danh sách loại phòng
}

func (h *Hotel) ValidateStatus() error {
	if h.Status < 0 || h.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", h.Status)
	}
	return nil
}
