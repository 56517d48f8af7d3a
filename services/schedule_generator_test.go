package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func newTestGenerator(catalog RoomCatalog, store ScheduleStore, horizonDays int) *ScheduleGenerator {
	return NewScheduleGenerator(ScheduleGeneratorOptions{
		Catalog:     catalog,
		Store:       store,
		Clock:       fixedClock{today: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		HorizonDays: horizonDays,
	})
}

func TestGenerateBaselineSchedules(t *testing.T) {
	t.Run("tạo đủ phòng nhân số ngày horizon", func(t *testing.T) {
		catalog := &fakeRoomCatalog{rooms: []RoomInfo{
			{RoomID: 1, HotelID: 1, BasePrice: 500000},
			{RoomID: 2, HotelID: 1, BasePrice: 700000},
		}}
		store := newFakeScheduleStore()
		generator := newTestGenerator(catalog, store, 7)

		created, err := generator.GenerateBaselineSchedules()
		require.NoError(t, err)
		assert.Equal(t, 14, created)

		schedule, ok := store.scheduleFor(1, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, float64(500000), schedule.BasePrice)
		assert.Equal(t, float64(500000), schedule.FinalPrice)
		assert.True(t, schedule.IsAutoGenerated)
	})

	t.Run("chạy lại không tạo trùng", func(t *testing.T) {
		catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 500000}}}
		store := newFakeScheduleStore()
		generator := newTestGenerator(catalog, store, 7)

		_, err := generator.GenerateBaselineSchedules()
		require.NoError(t, err)

		created, err := generator.GenerateBaselineSchedules()
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})

	t.Run("làm mới giá gốc cho lịch tự sinh chưa có giảm giá", func(t *testing.T) {
		catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 500000}}}
		store := newFakeScheduleStore()
		generator := newTestGenerator(catalog, store, 1)

		date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		store.seedSchedule(models.PriceSchedule{
			RoomID:          1,
			Date:            date,
			BasePrice:       400000,
			FinalPrice:      400000,
			AvailableRooms:  1,
			IsAutoGenerated: true,
		})

		created, err := generator.GenerateBaselineSchedules()
		require.NoError(t, err)
		assert.Equal(t, 0, created)

		schedule, ok := store.scheduleFor(1, date)
		require.True(t, ok)
		assert.Equal(t, float64(500000), schedule.BasePrice)
		assert.Equal(t, float64(500000), schedule.FinalPrice)
	})

	t.Run("không làm mới lịch đã có giảm giá", func(t *testing.T) {
		catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 500000}}}
		store := newFakeScheduleStore()
		generator := newTestGenerator(catalog, store, 1)

		date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		store.seedSchedule(models.PriceSchedule{
			RoomID:               1,
			Date:                 date,
			BasePrice:            400000,
			SystemDiscountAmount: 80000,
			FinalPrice:           320000,
			AvailableRooms:       1,
			IsAutoGenerated:      true,
		})

		_, err := generator.GenerateBaselineSchedules()
		require.NoError(t, err)

		schedule, ok := store.scheduleFor(1, date)
		require.True(t, ok)
		assert.Equal(t, float64(400000), schedule.BasePrice)
		assert.Equal(t, float64(320000), schedule.FinalPrice)
	})

	t.Run("không nâng lại số phòng đã khóa về 0", func(t *testing.T) {
		catalog := &fakeRoomCatalog{rooms: []RoomInfo{{RoomID: 1, HotelID: 1, BasePrice: 500000}}}
		store := newFakeScheduleStore()
		generator := newTestGenerator(catalog, store, 1)

		date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		store.seedSchedule(models.PriceSchedule{
			RoomID:          1,
			Date:            date,
			BasePrice:       400000,
			FinalPrice:      400000,
			AvailableRooms:  0,
			IsAutoGenerated: true,
		})

		_, err := generator.GenerateBaselineSchedules()
		require.NoError(t, err)

		schedule, ok := store.scheduleFor(1, date)
		require.True(t, ok)
		assert.Equal(t, 0, schedule.AvailableRooms)
		assert.Equal(t, float64(500000), schedule.BasePrice)
	})

	t.Run("không có phòng hoạt động thì không làm gì", func(t *testing.T) {
		catalog := &fakeRoomCatalog{}
		store := newFakeScheduleStore()
		generator := newTestGenerator(catalog, store, 7)

		created, err := generator.GenerateBaselineSchedules()
		require.NoError(t, err)
		assert.Equal(t, 0, created)
		assert.Empty(t, store.schedules)
	})
}
