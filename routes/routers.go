package routes

import (
	"context"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	promotionController := controllers.NewPromotionController(db, redisCli, m)
	scheduleController := controllers.NewScheduleController(db)

	adminOnly := middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleProvider)

	v1 := router.Group("/api/v1")

	v1.GET("/promotions", promotionController.GetPromotions)
	v1.GET("/promotions/:id", promotionController.GetPromotionDetail)
	v1.POST("/promotions", adminOnly, promotionController.CreatePromotion)
	v1.PUT("/promotionUpdate", adminOnly, promotionController.UpdatePromotion)
	v1.PUT("/promotionStatus", adminOnly, promotionController.ChangePromotionStatus)
	v1.DELETE("/promotions/:id", adminOnly, promotionController.DeletePromotion)
	v1.POST("/promotionApply", adminOnly, promotionController.ApplyPromotion)
	v1.GET("/promotionPreview", promotionController.PreviewPromotionDiscount)
	v1.GET("/promotionStats", adminOnly, promotionController.GetPromotionStats)

	v1.GET("/schedules", adminOnly, scheduleController.GetRoomSchedules)
	v1.POST("/schedulesGenerate", middlewares.AuthMiddleware(constants.RoleSuperAdmin), scheduleController.GenerateSchedules)

	// Upload banner cho khuyến mãi
	v1.POST("/img/upload", adminOnly, func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "promotions"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload banner thành công",
			"url":     resp.SecureURL,
		})
	})
}
