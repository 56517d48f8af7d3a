package validator

import (
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
)

// ValidatePromotion validate thông tin khuyến mãi trước khi ghi vào db
func ValidatePromotion(promotion *models.Promotion) error {
	if promotion.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khuyến mãi không được để trống", nil)
	}

	if promotion.Type < constants.PromotionTypeProvider || promotion.Type > constants.PromotionTypeBoth {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại khuyến mãi không hợp lệ", nil)
	}

	if promotion.DiscountType != constants.DiscountTypePercentage && promotion.DiscountType != constants.DiscountTypeFixedAmount {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại giảm giá không hợp lệ", nil)
	}

	if promotion.DiscountValue <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm giá phải lớn hơn 0", nil)
	}

	if promotion.DiscountType == constants.DiscountTypePercentage && promotion.DiscountValue > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm giá theo phần trăm không được vượt quá 100", nil)
	}

	if promotion.MaxDiscount != nil {
		if promotion.DiscountType != constants.DiscountTypePercentage {
			return errors.NewAppError(errors.ErrCodeValidation, "Trần giảm giá chỉ áp dụng cho giảm theo phần trăm", nil)
		}
		if *promotion.MaxDiscount <= 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Trần giảm giá phải lớn hơn 0", nil)
		}
	}

	if promotion.MinPurchase < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá trị đơn tối thiểu không được âm", nil)
	}

	startDate, err := time.Parse(models.DateLayout, promotion.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	endDate, err := time.Parse(models.DateLayout, promotion.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if endDate.Before(startDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải từ ngày bắt đầu trở đi", nil)
	}

	for _, dateStr := range promotion.ApplicableDates {
		if _, err := time.Parse(models.DateLayout, dateStr); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày áp dụng không hợp lệ: "+dateStr, err)
		}
	}

	for _, day := range promotion.DayOfWeek {
		if day < 0 || day > 6 {
			return errors.NewAppError(errors.ErrCodeValidation, "Thứ trong tuần phải từ 0 (Chủ nhật) đến 6 (Thứ bảy)", nil)
		}
	}

	if err := promotion.ValidateStatusPromotion(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}

	return nil
}
