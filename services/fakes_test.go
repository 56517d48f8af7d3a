package services

import (
	"time"

	"stayhub/constants"
	"stayhub/models"
)

// fixedClock giả lập "hôm nay" cho test
type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time {
	return c.today
}

type fakeRoomCatalog struct {
	rooms []RoomInfo
	err   error
}

func (f *fakeRoomCatalog) ListActiveRooms(hotelIDs, roomIDs models.UintList) ([]RoomInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []RoomInfo
	for _, room := range f.rooms {
		if hotelIDs.IsRestricted() && !hotelIDs.Contains(room.HotelID) {
			continue
		}
		if roomIDs.IsRestricted() && !roomIDs.Contains(room.RoomID) {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

type scheduleKey struct {
	roomID uint
	date   string
}

type applicationKey struct {
	scheduleID  uint
	promotionID uint
}

// fakeScheduleStore giữ lịch giá trong bộ nhớ và rollback như transaction thật
type fakeScheduleStore struct {
	schedules map[scheduleKey]models.PriceSchedule
	apps      map[applicationKey]models.PromotionApplication
	nextID    uint

	saveCalls     int
	failSaveAfter int // khi > 0, SaveSchedule trả lỗi từ lần ghi thứ failSaveAfter+1
	saveErr       error
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{
		schedules: map[scheduleKey]models.PriceSchedule{},
		apps:      map[applicationKey]models.PromotionApplication{},
	}
}

func dateKey(roomID uint, date time.Time) scheduleKey {
	return scheduleKey{roomID: roomID, date: date.Format("2006-01-02")}
}

func (f *fakeScheduleStore) seedSchedule(schedule models.PriceSchedule) models.PriceSchedule {
	f.nextID++
	schedule.ID = f.nextID
	f.schedules[dateKey(schedule.RoomID, schedule.Date)] = schedule
	return schedule
}

func (f *fakeScheduleStore) scheduleFor(roomID uint, date time.Time) (models.PriceSchedule, bool) {
	s, ok := f.schedules[dateKey(roomID, date)]
	return s, ok
}

func (f *fakeScheduleStore) applicationsFor(promotionID uint) []models.PromotionApplication {
	var out []models.PromotionApplication
	for key, app := range f.apps {
		if key.promotionID == promotionID {
			out = append(out, app)
		}
	}
	return out
}

func (f *fakeScheduleStore) InTransaction(fn func(tx ScheduleTx) error) error {
	schedulesSnapshot := make(map[scheduleKey]models.PriceSchedule, len(f.schedules))
	for k, v := range f.schedules {
		schedulesSnapshot[k] = v
	}
	appsSnapshot := make(map[applicationKey]models.PromotionApplication, len(f.apps))
	for k, v := range f.apps {
		appsSnapshot[k] = v
	}
	idSnapshot := f.nextID

	if err := fn(f); err != nil {
		f.schedules = schedulesSnapshot
		f.apps = appsSnapshot
		f.nextID = idSnapshot
		return err
	}
	return nil
}

func (f *fakeScheduleStore) GetOrCreateSchedule(room RoomInfo, date time.Time) (*models.PriceSchedule, bool, error) {
	if existing, ok := f.schedules[dateKey(room.RoomID, date)]; ok {
		copied := existing
		return &copied, false, nil
	}

	f.nextID++
	schedule := models.PriceSchedule{
		ID:              f.nextID,
		RoomID:          room.RoomID,
		Date:            date,
		BasePrice:       room.BasePrice,
		FinalPrice:      room.BasePrice,
		AvailableRooms:  1,
		PayLater:        true,
		IsAutoGenerated: true,
	}
	f.schedules[dateKey(room.RoomID, date)] = schedule
	copied := schedule
	return &copied, true, nil
}

func (f *fakeScheduleStore) SaveSchedule(schedule *models.PriceSchedule) error {
	f.saveCalls++
	if f.failSaveAfter > 0 && f.saveCalls > f.failSaveAfter {
		return f.saveErr
	}
	f.schedules[dateKey(schedule.RoomID, schedule.Date)] = *schedule
	return nil
}

func (f *fakeScheduleStore) PreviousDiscount(scheduleID, promotionID uint) (float64, error) {
	if app, ok := f.apps[applicationKey{scheduleID: scheduleID, promotionID: promotionID}]; ok {
		return app.DiscountAmount, nil
	}
	return 0, nil
}

func (f *fakeScheduleStore) UpsertApplication(scheduleID, promotionID uint, amount float64) error {
	key := applicationKey{scheduleID: scheduleID, promotionID: promotionID}
	if app, ok := f.apps[key]; ok {
		app.DiscountAmount = amount
		f.apps[key] = app
		return nil
	}
	f.apps[key] = models.PromotionApplication{
		PriceScheduleID: scheduleID,
		PromotionID:     promotionID,
		DiscountAmount:  amount,
	}
	return nil
}

func (f *fakeScheduleStore) CountApplications(promotionID uint) (int64, error) {
	var count int64
	for key := range f.apps {
		if key.promotionID == promotionID {
			count++
		}
	}
	return count, nil
}

func testPromotion(mods ...func(*models.Promotion)) *models.Promotion {
	promotion := &models.Promotion{
		ID:            1,
		Name:          "Khuyến mãi hè",
		Type:          constants.PromotionTypeSystem,
		DiscountType:  constants.DiscountTypePercentage,
		DiscountValue: 20,
		StartDate:     "01/06/2024",
		EndDate:       "02/06/2024",
		Status:        constants.PromotionStatusActive,
	}
	for _, mod := range mods {
		mod(promotion)
	}
	return promotion
}

func newTestService(catalog RoomCatalog, store ScheduleStore) *PromotionService {
	return NewPromotionService(PromotionServiceOptions{
		Catalog: catalog,
		Store:   store,
		Clock:   fixedClock{today: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	})
}
