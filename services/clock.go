package services

import "time"

// Clock cung cấp ngày hiện tại cho các kiểm tra hết hạn, để test có thể
// giả lập "hôm nay" tùy ý.
type Clock interface {
	Today() time.Time
}

type realClock struct{}

func (realClock) Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// NewRealClock trả về Clock dùng giờ hệ thống
func NewRealClock() Clock {
	return realClock{}
}
