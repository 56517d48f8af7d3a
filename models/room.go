package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	RoomTypeID  uint            `json:"roomTypeId" gorm:"index"`
	RoomName    string          `json:"roomName"`
	PriceBase   int             `json:"priceBase"` // Giá gốc mỗi đêm, dùng khi sinh lịch giá
	Description string          `json:"description"`
	Status      int             `json:"status" gorm:"default:1"` // 0 ngừng bán, 1 hoạt động, 2 bảo trì
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomType    RoomType        `json:"roomType" gorm:"foreignKey:RoomTypeID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}
