package services

import (
	"stayhub/services/logger"
)

// DefaultScheduleHorizonDays là số ngày tới mà lịch giá nền được sinh sẵn
const DefaultScheduleHorizonDays = 30

// ScheduleGenerator đảm bảo mọi cặp (phòng đang hoạt động, ngày) trong horizon
// đều có lịch giá trước khi các truy vấn tìm kiếm/định giá chạy.
type ScheduleGenerator struct {
	catalog     RoomCatalog
	store       ScheduleStore
	clock       Clock
	logger      logger.Logger
	horizonDays int
}

// ScheduleGeneratorOptions chứa các dependency của ScheduleGenerator
type ScheduleGeneratorOptions struct {
	Catalog     RoomCatalog
	Store       ScheduleStore
	Clock       Clock
	Logger      logger.Logger
	HorizonDays int
}

func NewScheduleGenerator(opts ScheduleGeneratorOptions) *ScheduleGenerator {
	if opts.Clock == nil {
		opts.Clock = NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.HorizonDays <= 0 {
		opts.HorizonDays = DefaultScheduleHorizonDays
	}
	return &ScheduleGenerator{
		catalog:     opts.Catalog,
		store:       opts.Store,
		clock:       opts.Clock,
		logger:      opts.Logger,
		horizonDays: opts.HorizonDays,
	}
}

// GenerateBaselineSchedules sinh lịch giá còn thiếu cho mọi phòng đang hoạt động
// từ hôm nay đến hết horizon, trả về số bản ghi mới tạo. Lịch giá tự sinh chưa có
// giảm giá được làm mới theo giá gốc hiện tại của phòng; số phòng mở bán đã về 0
// hoặc âm không bao giờ được nâng lại.
func (g *ScheduleGenerator) GenerateBaselineSchedules() (int, error) {
	rooms, err := g.catalog.ListActiveRooms(nil, nil)
	if err != nil {
		return 0, err
	}
	if len(rooms) == 0 {
		return 0, nil
	}

	today := g.clock.Today()
	created := 0
	err = g.store.InTransaction(func(tx ScheduleTx) error {
		for _, room := range rooms {
			for day := 0; day < g.horizonDays; day++ {
				date := today.AddDate(0, 0, day)
				schedule, isNew, err := tx.GetOrCreateSchedule(room, date)
				if err != nil {
					g.logger.Error("Lỗi sinh lịch giá: room=%d date=%s: %v",
						room.RoomID, date.Format("02/01/2006"), err)
					return err
				}
				if isNew {
					created++
					continue
				}

				// Chỉ làm mới lịch tự sinh chưa bị khuyến mãi nào chạm vào,
				// tránh phá vỡ sổ sách giảm giá đang có.
				if !schedule.IsAutoGenerated ||
					schedule.ProviderDiscountAmount != 0 || schedule.SystemDiscountAmount != 0 {
					continue
				}
				if schedule.BasePrice == room.BasePrice {
					continue
				}
				schedule.BasePrice = room.BasePrice
				schedule.RecalculateFinalPrice()
				schedule.ResetAvailability(1)
				if err := tx.SaveSchedule(schedule); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	g.logger.Info("Sinh lịch giá nền xong: %d phòng, %d bản ghi mới", len(rooms), created)
	return created, nil
}
