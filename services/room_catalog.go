package services

import (
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/models"
)

// RoomInfo là thông tin phòng tối thiểu mà engine khuyến mãi cần
type RoomInfo struct {
	RoomID    uint
	HotelID   uint
	BasePrice float64
}

// RoomCatalog cung cấp danh sách phòng đang hoạt động theo bộ lọc của khuyến mãi.
// Hai bộ lọc độc lập và đều thu hẹp kết quả (AND); danh sách rỗng nghĩa là không giới hạn.
type RoomCatalog interface {
	ListActiveRooms(hotelIDs, roomIDs models.UintList) ([]RoomInfo, error)
}

// GormRoomCatalog đọc catalog phòng từ db
type GormRoomCatalog struct {
	db *gorm.DB
}

func NewGormRoomCatalog(db *gorm.DB) *GormRoomCatalog {
	return &GormRoomCatalog{db: db}
}

func (c *GormRoomCatalog) ListActiveRooms(hotelIDs, roomIDs models.UintList) ([]RoomInfo, error) {
	tx := c.db.Table("rooms").
		Select("rooms.id AS room_id, room_types.hotel_id AS hotel_id, rooms.price_base AS base_price").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.status = ?", constants.RoomStatusActive)

	if hotelIDs.IsRestricted() {
		tx = tx.Where("room_types.hotel_id IN ?", []uint(hotelIDs))
	}
	if roomIDs.IsRestricted() {
		tx = tx.Where("rooms.id IN ?", []uint(roomIDs))
	}

	var rooms []RoomInfo
	if err := tx.Order("rooms.id").Scan(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
