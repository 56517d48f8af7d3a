package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
)

type ScheduleController struct {
	DB        *gorm.DB
	Generator *services.ScheduleGenerator
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	generator := services.NewScheduleGenerator(services.ScheduleGeneratorOptions{
		Catalog: services.NewGormRoomCatalog(db),
		Store:   services.NewGormScheduleStore(db),
	})
	return &ScheduleController{
		DB:        db,
		Generator: generator,
	}
}

// GetRoomSchedules trả về lịch giá của một phòng trong khoảng ngày cho dashboard
func (ctrl *ScheduleController) GetRoomSchedules(c *gin.Context) {
	roomIdStr := c.Query("roomId")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	roomId, err := strconv.ParseUint(roomIdStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	fromDate, err := time.Parse(layout, fromDateStr)
	if err != nil {
		response.BadRequest(c, "Sai định dạng fromDate")
		return
	}
	toDate, err := time.Parse(layout, toDateStr)
	if err != nil {
		response.BadRequest(c, "Sai định dạng toDate")
		return
	}
	if toDate.Before(fromDate) {
		response.BadRequest(c, "toDate phải từ fromDate trở đi")
		return
	}

	var schedules []models.PriceSchedule
	if err := ctrl.DB.
		Where("room_id = ? AND date BETWEEN ? AND ?", roomId, fromDate, toDate).
		Order("date").
		Find(&schedules).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, schedules)
}

// GenerateSchedules cho phép admin chạy sinh lịch giá nền ngay thay vì chờ cron
func (ctrl *ScheduleController) GenerateSchedules(c *gin.Context) {
	created, err := ctrl.Generator.GenerateBaselineSchedules()
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"created": created})
}
