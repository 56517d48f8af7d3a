package controllers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/services/notification"
	"stayhub/utils"
	"stayhub/validator"
)

var layout = models.DateLayout

func ConvertDateToComparableFormat(dateStr string) (string, error) {
	parsedDate, err := time.Parse(layout, dateStr)
	if err != nil {
		return "", err
	}
	return parsedDate.Format("20060102"), nil
}

type PromotionController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
	Service  *services.PromotionService
}

func NewPromotionController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *PromotionController {
	service := services.NewPromotionService(services.PromotionServiceOptions{
		DB:      db,
		Catalog: services.NewGormRoomCatalog(db),
		Store:   services.NewGormScheduleStore(db),
	})
	return &PromotionController{
		DB:       db,
		Redis:    redisCli,
		Notifier: notification.NewMelodyService(m),
		Service:  service,
	}
}

// respondError đổi AppError thành response cho admin: lỗi precondition trả về
// lý do cụ thể, chỉ lỗi datastore mới trả về lỗi server chung chung
func respondError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodePromotionNotFound:
			response.NotFound(c)
		case errors.ErrCodeDBError:
			response.ServerError(c)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}
	response.ServerError(c)
}

func toPromotionResponse(promotion models.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:               promotion.ID,
		Name:             promotion.Name,
		Description:      promotion.Description,
		Banner:           promotion.Banner,
		Type:             promotion.Type,
		DiscountType:     promotion.DiscountType,
		DiscountValue:    promotion.DiscountValue,
		MaxDiscount:      promotion.MaxDiscount,
		MinPurchase:      promotion.MinPurchase,
		StartDate:        promotion.StartDate,
		EndDate:          promotion.EndDate,
		ApplicableHotels: promotion.ApplicableHotels,
		ApplicableRooms:  promotion.ApplicableRooms,
		ApplicableDates:  promotion.ApplicableDates,
		DayOfWeek:        promotion.DayOfWeek,
		Status:           promotion.Status,
		CreatedAt:        promotion.CreatedAt,
		UpdatedAt:        promotion.UpdatedAt,
	}
}

func (ctrl *PromotionController) GetPromotions(c *gin.Context) {
	// Quét hết hạn lazy trước khi liệt kê
	if err := ctrl.Service.ExpireOutdatedPromotions(); err != nil {
		response.ServerError(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	typeFilter := c.Query("type")
	nameFilter := c.Query("name")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Cache danh sách mặc định (không lọc, trang đầu) trên Redis
	useCache := ctrl.Redis != nil && nameFilter == "" && statusFilter == "" && typeFilter == "" &&
		fromDateStr == "" && toDateStr == "" && page == 0
	if useCache {
		var cached []dto.PromotionResponse
		if err := services.GetFromRedis(config.Ctx, ctrl.Redis, services.CacheKeyPromotions, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithPagination(c, cached, page, limit, len(cached))
			return
		}
	}

	tx := ctrl.DB.Model(&models.Promotion{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if typeFilter != "" {
		tx = tx.Where("type = ?", typeFilter)
	}
	if fromDateStr != "" {
		fromDateComparable, err := ConvertDateToComparableFormat(fromDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}

		if toDateStr != "" {
			toDateComparable, err := ConvertDateToComparableFormat(toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			tx = tx.Where("SUBSTRING(start_date, 7, 4) || SUBSTRING(start_date, 4, 2) || SUBSTRING(start_date, 1, 2) >= ? AND SUBSTRING(end_date, 7, 4) || SUBSTRING(end_date, 4, 2) || SUBSTRING(end_date, 1, 2) <= ?", fromDateComparable, toDateComparable)
		} else {
			tx = tx.Where("SUBSTRING(start_date, 7, 4) || SUBSTRING(start_date, 4, 2) || SUBSTRING(start_date, 1, 2) >= ?", fromDateComparable)
		}
	}

	var totalPromotions int64
	if err := tx.Count(&totalPromotions).Error; err != nil {
		response.ServerError(c)
		return
	}

	var promotions []models.Promotion
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&promotions).Error; err != nil {
		response.ServerError(c)
		return
	}

	var promotionResponses []dto.PromotionResponse
	for _, promotion := range promotions {
		promotionResponses = append(promotionResponses, toPromotionResponse(promotion))
	}

	if useCache && len(promotionResponses) > 0 {
		_ = services.SetToRedis(config.Ctx, ctrl.Redis, services.CacheKeyPromotions, promotionResponses, 5*time.Minute)
	}

	response.SuccessWithPagination(c, promotionResponses, page, limit, int(totalPromotions))
}

func (ctrl *PromotionController) GetPromotionDetail(c *gin.Context) {
	var promotion models.Promotion
	promotionId := c.Param("id")
	if err := ctrl.DB.Where("id = ?", promotionId).First(&promotion).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toPromotionResponse(promotion))
}

func (ctrl *PromotionController) CreatePromotion(c *gin.Context) {
	var request dto.CreatePromotionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	status := constants.PromotionStatusActive
	if request.Status != nil {
		status = *request.Status
	}

	createdBy, _ := c.Get("userID")
	creatorID, _ := createdBy.(uint)

	promotion := models.Promotion{
		Name:             request.Name,
		Description:      request.Description,
		Banner:           request.Banner,
		Type:             request.Type,
		DiscountType:     request.DiscountType,
		DiscountValue:    request.DiscountValue,
		MaxDiscount:      request.MaxDiscount,
		MinPurchase:      request.MinPurchase,
		StartDate:        request.StartDate,
		EndDate:          request.EndDate,
		ApplicableHotels: request.ApplicableHotels,
		ApplicableRooms:  request.ApplicableRooms,
		ApplicableDates:  request.ApplicableDates,
		DayOfWeek:        request.DayOfWeek,
		Status:           status,
		CreatedBy:        creatorID,
	}

	if err := validator.ValidatePromotion(&promotion); err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.DB.Create(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidatePromotionCache(config.Ctx, ctrl.Redis)

	response.Success(c, toPromotionResponse(promotion))
}

func (ctrl *PromotionController) UpdatePromotion(c *gin.Context) {
	var request dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var promotion models.Promotion
	if err := ctrl.DB.First(&promotion, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		promotion.Name = request.Name
	}
	if request.Description != "" {
		promotion.Description = request.Description
	}
	if request.Banner != "" {
		promotion.Banner = request.Banner
	}
	if request.DiscountValue > 0 {
		promotion.DiscountValue = request.DiscountValue
	}
	if request.MaxDiscount != nil {
		promotion.MaxDiscount = request.MaxDiscount
	}
	if request.MinPurchase > 0 {
		promotion.MinPurchase = request.MinPurchase
	}
	if request.StartDate != "" {
		promotion.StartDate = request.StartDate
	}
	if request.EndDate != "" {
		promotion.EndDate = request.EndDate
	}
	if request.ApplicableHotels != nil {
		promotion.ApplicableHotels = request.ApplicableHotels
	}
	if request.ApplicableRooms != nil {
		promotion.ApplicableRooms = request.ApplicableRooms
	}
	if request.ApplicableDates != nil {
		promotion.ApplicableDates = request.ApplicableDates
	}
	if request.DayOfWeek != nil {
		promotion.DayOfWeek = request.DayOfWeek
	}

	if err := validator.ValidatePromotion(&promotion); err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.DB.Save(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidatePromotionCache(config.Ctx, ctrl.Redis)

	response.Success(c, toPromotionResponse(promotion))
}

func (ctrl *PromotionController) DeletePromotion(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hardDeleted, err := ctrl.Service.DeletePromotion(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidatePromotionCache(config.Ctx, ctrl.Redis)

	response.Success(c, gin.H{"hardDeleted": hardDeleted})
}

func (ctrl *PromotionController) ChangePromotionStatus(c *gin.Context) {
	var request dto.ChangePromotionStatusRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	newStatus, err := ctrl.Service.ChangePromotionStatus(request.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidatePromotionCache(config.Ctx, ctrl.Redis)

	response.Success(c, gin.H{"status": newStatus})
}

func (ctrl *PromotionController) ApplyPromotion(c *gin.Context) {
	var request dto.ApplyPromotionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	affected, err := ctrl.Service.ApplyPromotionToSchedules(request.ID)
	if err != nil {
		utils.LogError("Áp khuyến mãi %d thất bại: %v", request.ID, err)
		respondError(c, err)
		return
	}

	utils.LogInfo("Áp khuyến mãi %d vào %d lịch giá", request.ID, affected)
	services.InvalidatePromotionCache(config.Ctx, ctrl.Redis)

	var promotion models.Promotion
	if err := ctrl.DB.First(&promotion, request.ID).Error; err == nil {
		message := notification.NewPromotionAppliedMessage(promotion.ID, promotion.Name, affected).Build()
		if err := ctrl.Notifier.SendMessage(message); err != nil {
			utils.LogError("Không gửi được thông báo áp khuyến mãi %d: %v", request.ID, err)
		}
	}

	response.Success(c, dto.ApplyPromotionResponse{AffectedSchedules: affected})
}

// PreviewPromotionDiscount tính thử mức giảm cho một mức giá, dùng chung hàm
// tính với luồng áp thật nên kết quả preview luôn khớp với kết quả áp
func (ctrl *PromotionController) PreviewPromotionDiscount(c *gin.Context) {
	idStr := c.Query("id")
	priceStr := c.Query("price")

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		response.BadRequest(c, "Giá không hợp lệ")
		return
	}

	var promotion models.Promotion
	if err := ctrl.DB.First(&promotion, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	amount := services.CalculateDiscount(price, &promotion)
	providerPart, systemPart := services.SplitDiscount(promotion.Type, amount)
	finalPrice := price - amount
	if finalPrice < 0 {
		finalPrice = 0
	}

	response.Success(c, gin.H{
		"discountAmount": amount,
		"providerShare":  providerPart,
		"systemShare":    systemPart,
		"finalPrice":     finalPrice,
	})
}

func (ctrl *PromotionController) GetPromotionStats(c *gin.Context) {
	stats, err := ctrl.Service.GetPromotionStats()
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, dto.PromotionStatsResponse{
		Total:        stats.Total,
		Active:       stats.Active,
		Inactive:     stats.Inactive,
		Expired:      stats.Expired,
		Applications: stats.Applications,
	})
}
