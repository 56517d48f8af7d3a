package services

import (
	"stayhub/constants"
	"stayhub/models"
)

// CalculateDiscount tính số tiền giảm cho một mức giá gốc theo khuyến mãi.
// Hàm thuần, dùng chung cho cả preview và áp thực tế để hai kết quả luôn khớp nhau.
func CalculateDiscount(basePrice float64, promotion *models.Promotion) float64 {
	switch promotion.DiscountType {
	case constants.DiscountTypePercentage:
		amount := basePrice * promotion.DiscountValue / 100
		if promotion.MaxDiscount != nil && amount > *promotion.MaxDiscount {
			amount = *promotion.MaxDiscount
		}
		return amount
	case constants.DiscountTypeFixedAmount:
		// Số tiền cố định không phụ thuộc giá gốc, có thể vượt quá giá gốc.
		// Giá cuối được chặn không âm khi ghi vào lịch giá.
		return promotion.DiscountValue
	}
	return 0
}

// SplitDiscount chia một khoản giảm cho hai quỹ provider/system theo loại khuyến mãi.
// Loại "cả hai" chia đôi cho mỗi bên.
func SplitDiscount(promotionType int, amount float64) (providerPart, systemPart float64) {
	switch promotionType {
	case constants.PromotionTypeProvider:
		return amount, 0
	case constants.PromotionTypeSystem:
		return 0, amount
	default:
		return amount / 2, amount / 2
	}
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
