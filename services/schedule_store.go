package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayhub/models"
)

// ScheduleTx là tập thao tác trên lịch giá bên trong một transaction
type ScheduleTx interface {
	// GetOrCreateSchedule trả về lịch giá cho (phòng, ngày), tạo mới nếu chưa có.
	// created = true khi bản ghi vừa được tạo bởi lời gọi này.
	GetOrCreateSchedule(room RoomInfo, date time.Time) (schedule *models.PriceSchedule, created bool, err error)
	SaveSchedule(schedule *models.PriceSchedule) error
	// PreviousDiscount trả về số tiền khuyến mãi đã đóng góp vào lịch giá trước đó,
	// 0 nếu chưa từng áp.
	PreviousDiscount(scheduleID, promotionID uint) (float64, error)
	// UpsertApplication ghi số tiền đóng góp hiện tại, mỗi cặp (lịch giá, khuyến mãi)
	// chỉ giữ một bản ghi.
	UpsertApplication(scheduleID, promotionID uint, amount float64) error
}

// ScheduleStore bao các thao tác lịch giá trong transaction tất-cả-hoặc-không
type ScheduleStore interface {
	InTransaction(fn func(tx ScheduleTx) error) error
	// CountApplications đếm số lịch giá đang tham chiếu một khuyến mãi
	CountApplications(promotionID uint) (int64, error)
}

// GormScheduleStore là implementation trên gorm/postgres
type GormScheduleStore struct {
	db *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{db: db}
}

func (s *GormScheduleStore) InTransaction(fn func(tx ScheduleTx) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormScheduleTx{tx: tx})
	})
}

func (s *GormScheduleStore) CountApplications(promotionID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.PromotionApplication{}).
		Where("promotion_id = ?", promotionID).
		Count(&count).Error
	return count, err
}

type gormScheduleTx struct {
	tx *gorm.DB
}

func (t *gormScheduleTx) GetOrCreateSchedule(room RoomInfo, date time.Time) (*models.PriceSchedule, bool, error) {
	var schedule models.PriceSchedule
	err := t.tx.Where("room_id = ? AND date = ?", room.RoomID, date).First(&schedule).Error
	if err == nil {
		return &schedule, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	schedule = models.PriceSchedule{
		RoomID:          room.RoomID,
		Date:            date,
		BasePrice:       room.BasePrice,
		FinalPrice:      room.BasePrice,
		AvailableRooms:  1,
		PayLater:        true,
		IsAutoGenerated: true,
	}
	if createErr := t.tx.Create(&schedule).Error; createErr != nil {
		// Request khác vừa tạo lịch giá cho (phòng, ngày) này giữa lúc kiểm tra
		// và insert: đọc lại bản ghi đã có thay vì làm hỏng cả batch.
		if isDuplicateKeyError(createErr) {
			var existing models.PriceSchedule
			if refetchErr := t.tx.Where("room_id = ? AND date = ?", room.RoomID, date).First(&existing).Error; refetchErr != nil {
				return nil, false, refetchErr
			}
			return &existing, false, nil
		}
		return nil, false, createErr
	}
	return &schedule, true, nil
}

func (t *gormScheduleTx) SaveSchedule(schedule *models.PriceSchedule) error {
	return t.tx.Save(schedule).Error
}

func (t *gormScheduleTx) PreviousDiscount(scheduleID, promotionID uint) (float64, error) {
	var application models.PromotionApplication
	err := t.tx.Where("price_schedule_id = ? AND promotion_id = ?", scheduleID, promotionID).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return application.DiscountAmount, nil
}

func (t *gormScheduleTx) UpsertApplication(scheduleID, promotionID uint, amount float64) error {
	application := models.PromotionApplication{
		PriceScheduleID: scheduleID,
		PromotionID:     promotionID,
		DiscountAmount:  amount,
	}
	return t.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "price_schedule_id"}, {Name: "promotion_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"discount_amount", "updated_at"}),
	}).Create(&application).Error
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// driver postgres không phải lúc nào cũng được translate sang ErrDuplicatedKey
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "SQLSTATE 23505")
}
