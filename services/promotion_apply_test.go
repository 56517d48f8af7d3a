package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
)

func TestApplyPromotion_EndToEnd(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	promotion := testPromotion()

	affected, err := service.applyPromotion(promotion)
	require.NoError(t, err)
	assert.Equal(t, 2, affected)

	for _, day := range []int{1, 2} {
		date := time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
		schedule, ok := store.scheduleFor(1, date)
		require.True(t, ok, "thiếu lịch giá ngày %d", day)
		assert.Equal(t, float64(200000), schedule.SystemDiscountAmount)
		assert.Equal(t, float64(0), schedule.ProviderDiscountAmount)
		assert.Equal(t, float64(800000), schedule.FinalPrice)
	}

	apps := store.applicationsFor(promotion.ID)
	require.Len(t, apps, 2)
	for _, app := range apps {
		assert.Equal(t, float64(200000), app.DiscountAmount)
	}
}

func TestApplyPromotion_Idempotent(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	promotion := testPromotion()

	_, err := service.applyPromotion(promotion)
	require.NoError(t, err)
	_, err = service.applyPromotion(promotion)
	require.NoError(t, err)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	schedule, ok := store.scheduleFor(1, date)
	require.True(t, ok)
	assert.Equal(t, float64(200000), schedule.SystemDiscountAmount)
	assert.Equal(t, float64(800000), schedule.FinalPrice)

	// Áp lại không được tạo thêm bản ghi sổ áp dụng
	assert.Len(t, store.applicationsFor(promotion.ID), 2)
}

func TestApplyPromotion_ReplacesInsteadOfStacking(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	promotion := testPromotion()

	_, err := service.applyPromotion(promotion)
	require.NoError(t, err)

	// Admin hạ mức giảm từ 20% xuống 10% rồi áp lại
	promotion.DiscountValue = 10
	_, err = service.applyPromotion(promotion)
	require.NoError(t, err)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	schedule, ok := store.scheduleFor(1, date)
	require.True(t, ok)
	assert.Equal(t, float64(100000), schedule.SystemDiscountAmount)
	assert.Equal(t, float64(900000), schedule.FinalPrice)
}

func TestApplyPromotion_SplitsBothTypeEvenly(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 10000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	promotion := testPromotion(func(p *models.Promotion) {
		p.Type = constants.PromotionTypeBoth
		p.DiscountType = constants.DiscountTypeFixedAmount
		p.DiscountValue = 1000
		p.EndDate = "01/06/2024"
	})

	_, err := service.applyPromotion(promotion)
	require.NoError(t, err)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	schedule, ok := store.scheduleFor(1, date)
	require.True(t, ok)
	assert.Equal(t, float64(500), schedule.ProviderDiscountAmount)
	assert.Equal(t, float64(500), schedule.SystemDiscountAmount)
	assert.Equal(t, float64(9000), schedule.FinalPrice)
}

func TestApplyPromotion_FinalPriceNeverNegative(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	promotion := testPromotion(func(p *models.Promotion) {
		p.DiscountType = constants.DiscountTypeFixedAmount
		p.DiscountValue = 2000
		p.EndDate = "01/06/2024"
	})

	_, err := service.applyPromotion(promotion)
	require.NoError(t, err)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	schedule, ok := store.scheduleFor(1, date)
	require.True(t, ok)
	assert.Equal(t, float64(0), schedule.FinalPrice)
}

func TestApplyPromotion_PreservesLockedAvailability(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	// Phòng đã bị giữ cho ngày 01/06 bởi luồng đặt phòng
	locked := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store.seedSchedule(models.PriceSchedule{
		RoomID:         1,
		Date:           locked,
		BasePrice:      1000000,
		FinalPrice:     1000000,
		AvailableRooms: 0,
	})

	promotion := testPromotion()

	_, err := service.applyPromotion(promotion)
	require.NoError(t, err)

	schedule, ok := store.scheduleFor(1, locked)
	require.True(t, ok)
	assert.Equal(t, 0, schedule.AvailableRooms)
	assert.Equal(t, float64(800000), schedule.FinalPrice)
}

func TestApplyPromotion_RejectsInactivePromotion(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	promotion := testPromotion(func(p *models.Promotion) {
		p.Status = constants.PromotionStatusInactive
	})

	_, err := service.applyPromotion(promotion)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodePromotionNotActive, appErr.Code)
	assert.Empty(t, store.schedules)
}

func TestApplyPromotion_NoMatchingRooms(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	promotion := testPromotion(func(p *models.Promotion) {
		p.ApplicableRooms = models.UintList{99}
	})

	_, err := service.applyPromotion(promotion)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeNoMatchingRooms, appErr.Code)
	assert.Empty(t, store.schedules)
}

func TestApplyPromotion_NoMatchingDates(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	// 01-02/06/2024 là thứ bảy và chủ nhật, lọc thứ hai thì không còn ngày nào
	promotion := testPromotion(func(p *models.Promotion) {
		p.DayOfWeek = models.IntList{1}
	})

	_, err := service.applyPromotion(promotion)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeNoMatchingDates, appErr.Code)
	assert.Empty(t, store.schedules)
}

func TestApplyPromotion_RollsBackWholeBatchOnError(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 1000000}}}
	store := newFakeScheduleStore()
	store.failSaveAfter = 1
	store.saveErr = errors.New("connection reset by peer")
	service := newTestService(catalog, store)

	promotion := testPromotion()

	_, err := service.applyPromotion(promotion)
	require.Error(t, err)

	// Lỗi ở bản ghi thứ hai phải rollback cả bản ghi thứ nhất
	assert.Empty(t, store.schedules)
	assert.Empty(t, store.apps)
}

func TestApplyPromotion_FiltersRoomsByHotelAndRoom(t *testing.T) {
	catalog := &fakeRoomCatalog{rooms: []RoomInfo{
		{RoomID: 1, HotelID: 1, BasePrice: 500000},
		{RoomID: 2, HotelID: 1, BasePrice: 700000},
		{RoomID: 3, HotelID: 2, BasePrice: 900000},
	}}
	store := newFakeScheduleStore()
	service := newTestService(catalog, store)

	// Hai bộ lọc đều thu hẹp: hotel 1 AND room {2, 3} chỉ còn phòng 2
	promotion := testPromotion(func(p *models.Promotion) {
		p.ApplicableHotels = models.UintList{1}
		p.ApplicableRooms = models.UintList{2, 3}
		p.EndDate = "01/06/2024"
	})

	affected, err := service.applyPromotion(promotion)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, room1Touched := store.scheduleFor(1, date)
	_, room2Touched := store.scheduleFor(2, date)
	_, room3Touched := store.scheduleFor(3, date)
	assert.False(t, room1Touched)
	assert.True(t, room2Touched)
	assert.False(t, room3Touched)
}
