package models

import (
	"encoding/json"
	"time"
)

type RoomType struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	HotelID     uint            `json:"hotelId" gorm:"index"`
	Name        string          `json:"name"`
	NumBed      int             `json:"numBed"`
	NumTolet    int             `json:"numTolet"`
	Acreage     int             `json:"acreage"`
	People      int             `json:"people"`
	Description string          `json:"description"`
	Furniture   json.RawMessage `json:"furniture" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel       Hotel           `json:"hotel" gorm:"foreignKey:HotelID"`
	Rooms       []Room          `json:"rooms" gorm:"foreignKey:RoomTypeID"`
}
