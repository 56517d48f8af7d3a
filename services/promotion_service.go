package services

import (
	goerrors "errors"
	"time"

	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
)

// PromotionServiceOptions chứa các dependency của PromotionService
type PromotionServiceOptions struct {
	DB      *gorm.DB
	Catalog RoomCatalog
	Store   ScheduleStore
	Clock   Clock
	Logger  logger.Logger
}

// PromotionService xử lý vòng đời khuyến mãi và việc áp khuyến mãi vào lịch giá
type PromotionService struct {
	db      *gorm.DB
	catalog RoomCatalog
	store   ScheduleStore
	clock   Clock
	logger  logger.Logger
}

func NewPromotionService(opts PromotionServiceOptions) *PromotionService {
	if opts.Clock == nil {
		opts.Clock = NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PromotionService{
		db:      opts.DB,
		catalog: opts.Catalog,
		store:   opts.Store,
		clock:   opts.Clock,
		logger:  opts.Logger,
	}
}

// ApplyPromotionToSchedules áp một khuyến mãi vào toàn bộ lịch giá của các phòng
// và ngày phù hợp, trả về số lịch giá đã cập nhật. Toàn bộ batch chạy trong một
// transaction: có lỗi giữa chừng thì không lịch giá nào bị thay đổi.
func (s *PromotionService) ApplyPromotionToSchedules(promotionID uint) (int, error) {
	var promotion models.Promotion
	if err := s.db.First(&promotion, promotionID).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.NewAppError(errors.ErrCodePromotionNotFound, "Không tìm thấy khuyến mãi", nil)
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được khuyến mãi", err)
	}

	if err := s.expireIfOutdated(&promotion); err != nil {
		return 0, err
	}

	return s.applyPromotion(&promotion)
}

func (s *PromotionService) applyPromotion(promotion *models.Promotion) (int, error) {
	if promotion.Status != constants.PromotionStatusActive {
		return 0, errors.NewAppError(errors.ErrCodePromotionNotActive, "Khuyến mãi không ở trạng thái hoạt động", nil)
	}

	rooms, err := s.catalog.ListActiveRooms(promotion.ApplicableHotels, promotion.ApplicableRooms)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được danh sách phòng", err)
	}
	if len(rooms) == 0 {
		return 0, errors.NewAppError(errors.ErrCodeNoMatchingRooms, "Không có phòng phù hợp với khuyến mãi", nil)
	}

	dates, err := ResolveDates(promotion.StartDate, promotion.EndDate, promotion.ApplicableDates, promotion.DayOfWeek)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, errors.NewAppError(errors.ErrCodeNoMatchingDates, "Không có ngày phù hợp với khuyến mãi", nil)
	}

	affected := 0
	txErr := s.store.InTransaction(func(tx ScheduleTx) error {
		for _, room := range rooms {
			for _, date := range dates {
				schedule, _, err := tx.GetOrCreateSchedule(room, date)
				if err != nil {
					s.logger.Error("Lỗi lấy lịch giá: promotion=%d room=%d date=%s: %v",
						promotion.ID, room.RoomID, date.Format(models.DateLayout), err)
					return err
				}

				newAmount := CalculateDiscount(schedule.BasePrice, promotion)
				prevAmount, err := tx.PreviousDiscount(schedule.ID, promotion.ID)
				if err != nil {
					s.logger.Error("Lỗi đọc mức giảm cũ: promotion=%d schedule=%d: %v",
						promotion.ID, schedule.ID, err)
					return err
				}

				// Trừ đi phần đã đóng góp trước đó: áp lại khuyến mãi không đổi
				// là no-op, còn đổi mức giảm rồi áp lại sẽ thay thế chứ không cộng dồn.
				delta := newAmount - prevAmount
				providerDelta, systemDelta := SplitDiscount(promotion.Type, delta)
				schedule.ProviderDiscountAmount = clampNonNegative(schedule.ProviderDiscountAmount + providerDelta)
				schedule.SystemDiscountAmount = clampNonNegative(schedule.SystemDiscountAmount + systemDelta)
				schedule.RecalculateFinalPrice()

				if err := tx.SaveSchedule(schedule); err != nil {
					s.logger.Error("Lỗi ghi lịch giá: promotion=%d room=%d date=%s: %v",
						promotion.ID, room.RoomID, date.Format(models.DateLayout), err)
					return err
				}
				if err := tx.UpsertApplication(schedule.ID, promotion.ID, newAmount); err != nil {
					s.logger.Error("Lỗi ghi sổ khuyến mãi: promotion=%d schedule=%d: %v",
						promotion.ID, schedule.ID, err)
					return err
				}
				affected++
			}
		}
		return nil
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return 0, txErr
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Áp khuyến mãi thất bại, đã rollback toàn bộ", txErr)
	}

	s.logger.Info("Đã áp khuyến mãi %d (%s) vào %d lịch giá", promotion.ID, promotion.Name, affected)
	return affected, nil
}

// NextPromotionStatus tính trạng thái kế tiếp khi admin bấm chuyển trạng thái.
// Khuyến mãi đang hoạt động nhưng đã qua ngày kết thúc được chuyển sang hết hạn
// trước khi xét; khuyến mãi hết hạn chỉ kích hoạt lại được khi ngày kết thúc
// còn từ hôm nay trở đi.
func NextPromotionStatus(promotion *models.Promotion, today time.Time) (int, error) {
	status := promotion.Status
	if status == constants.PromotionStatusActive && promotion.IsExpiredAt(today) {
		status = constants.PromotionStatusExpired
	}

	switch status {
	case constants.PromotionStatusActive:
		return constants.PromotionStatusInactive, nil
	case constants.PromotionStatusInactive:
		return constants.PromotionStatusActive, nil
	case constants.PromotionStatusExpired:
		if promotion.IsExpiredAt(today) {
			return status, errors.NewAppError(errors.ErrCodePromotionExpired,
				"Không thể kích hoạt lại khuyến mãi đã qua ngày kết thúc", nil)
		}
		return constants.PromotionStatusActive, nil
	}
	return status, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái khuyến mãi không hợp lệ", nil)
}

// ChangePromotionStatus chuyển trạng thái khuyến mãi theo state machine ở trên,
// trả về trạng thái mới.
func (s *PromotionService) ChangePromotionStatus(promotionID uint) (int, error) {
	var promotion models.Promotion
	if err := s.db.First(&promotion, promotionID).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.NewAppError(errors.ErrCodePromotionNotFound, "Không tìm thấy khuyến mãi", nil)
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được khuyến mãi", err)
	}

	newStatus, statusErr := NextPromotionStatus(&promotion, s.clock.Today())

	// Trạng thái hết hạn phát hiện lazy vẫn phải được ghi lại dù toggle bị từ chối
	if newStatus != promotion.Status {
		if err := s.db.Model(&promotion).Update("status", newStatus).Error; err != nil {
			return 0, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái", err)
		}
	}
	if statusErr != nil {
		return promotion.Status, statusErr
	}
	return newStatus, nil
}

// DeletePromotion xóa khuyến mãi. Nếu còn lịch giá tham chiếu qua sổ áp dụng thì
// chỉ chuyển sang ngừng hoạt động (soft-delete), ngược lại xóa hẳn bản ghi.
// Phần giảm giá đã ghi vào lịch giá không được hoàn tác.
func (s *PromotionService) DeletePromotion(promotionID uint) (hardDeleted bool, err error) {
	var promotion models.Promotion
	if err := s.db.First(&promotion, promotionID).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return false, errors.NewAppError(errors.ErrCodePromotionNotFound, "Không tìm thấy khuyến mãi", nil)
		}
		return false, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được khuyến mãi", err)
	}

	referenced, err := s.store.CountApplications(promotionID)
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Không đếm được số lịch giá tham chiếu", err)
	}

	if referenced > 0 {
		if err := s.db.Model(&promotion).Update("status", constants.PromotionStatusInactive).Error; err != nil {
			return false, errors.NewAppError(errors.ErrCodeDBError, "Không ngừng được khuyến mãi", err)
		}
		s.logger.Info("Khuyến mãi %d còn %d lịch giá tham chiếu, chuyển sang ngừng hoạt động", promotionID, referenced)
		return false, nil
	}

	if err := s.db.Delete(&promotion).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Không xóa được khuyến mãi", err)
	}
	return true, nil
}

// ExpireOutdatedPromotions chuyển mọi khuyến mãi đang hoạt động đã qua ngày kết
// thúc sang hết hạn. Được gọi lazy trước các thao tác liệt kê/thống kê thay vì
// chạy nền theo đồng hồ.
func (s *PromotionService) ExpireOutdatedPromotions() error {
	today := s.clock.Today().Format("20060102")
	return s.db.Model(&models.Promotion{}).
		Where("status = ?", constants.PromotionStatusActive).
		Where("SUBSTRING(end_date, 7, 4) || SUBSTRING(end_date, 4, 2) || SUBSTRING(end_date, 1, 2) < ?", today).
		Update("status", constants.PromotionStatusExpired).Error
}

// PromotionStats là số liệu khuyến mãi cho dashboard admin
type PromotionStats struct {
	Total        int64
	Active       int64
	Inactive     int64
	Expired      int64
	Applications int64
}

// GetPromotionStats thống kê khuyến mãi theo trạng thái, có quét hết hạn trước
func (s *PromotionService) GetPromotionStats() (*PromotionStats, error) {
	if err := s.ExpireOutdatedPromotions(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không quét được khuyến mãi hết hạn", err)
	}

	stats := &PromotionStats{}
	if err := s.db.Model(&models.Promotion{}).Count(&stats.Total).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đếm được khuyến mãi", err)
	}

	counts := []struct {
		status int
		target *int64
	}{
		{constants.PromotionStatusActive, &stats.Active},
		{constants.PromotionStatusInactive, &stats.Inactive},
		{constants.PromotionStatusExpired, &stats.Expired},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.Promotion{}).Where("status = ?", c.status).Count(c.target).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đếm được khuyến mãi", err)
		}
	}

	if err := s.db.Model(&models.PromotionApplication{}).Count(&stats.Applications).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đếm được sổ áp dụng", err)
	}
	return stats, nil
}

// expireIfOutdated cập nhật trạng thái hết hạn cho một khuyến mãi nếu cần
func (s *PromotionService) expireIfOutdated(promotion *models.Promotion) error {
	if promotion.Status != constants.PromotionStatusActive || !promotion.IsExpiredAt(s.clock.Today()) {
		return nil
	}
	if err := s.db.Model(promotion).Update("status", constants.PromotionStatusExpired).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái hết hạn", err)
	}
	promotion.Status = constants.PromotionStatusExpired
	return nil
}
