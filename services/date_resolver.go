package services

import (
	"time"

	"stayhub/errors"
	"stayhub/models"
)

// ResolveDates liệt kê các ngày trong khoảng [startDate, endDate] (tính cả hai đầu)
// mà khuyến mãi được áp dụng. Ngày được giữ lại khi nằm trong applicableDates
// (nếu danh sách có giới hạn) và rơi vào thứ trong daysOfWeek (nếu có giới hạn).
// Quy ước thứ: 0 = Chủ nhật ... 6 = Thứ bảy, trùng với time.Weekday.
func ResolveDates(startDate, endDate string, applicableDates models.StringList, daysOfWeek models.IntList) ([]time.Time, error) {
	from, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	to, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if to.Before(from) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải từ ngày bắt đầu trở đi", nil)
	}

	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if applicableDates.IsRestricted() && !applicableDates.Contains(d.Format(models.DateLayout)) {
			continue
		}
		if daysOfWeek.IsRestricted() && !daysOfWeek.Contains(int(d.Weekday())) {
			continue
		}
		dates = append(dates, d)
	}
	return dates, nil
}
