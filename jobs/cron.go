package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BaselineScheduleGenerator định nghĩa interface cho việc sinh lịch giá nền
type BaselineScheduleGenerator interface {
	GenerateBaselineSchedules() (int, error)
}

var scheduleGenerator BaselineScheduleGenerator

// SetScheduleGenerator thiết lập implementation cho BaselineScheduleGenerator
func SetScheduleGenerator(generator BaselineScheduleGenerator) {
	scheduleGenerator = generator
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Sinh lịch giá nền lúc 0h mỗi ngày, để mọi cặp (phòng, ngày) đều có
	// bản ghi giá trước khi các truy vấn tìm kiếm chạy
	_, err := c.AddFunc("0 0 * * *", func() {
		if scheduleGenerator == nil {
			log.Printf("Lỗi: BaselineScheduleGenerator chưa được thiết lập")
			return
		}
		created, err := scheduleGenerator.GenerateBaselineSchedules()
		if err != nil {
			log.Printf("Lỗi khi sinh lịch giá nền: %v", err)
			return
		}
		log.Printf("Sinh lịch giá nền xong, %d bản ghi mới", created)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
