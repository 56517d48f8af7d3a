package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// PromotionAppliedMessage dựng thông báo đẩy cho dashboard khi áp khuyến mãi xong
type PromotionAppliedMessage struct {
	promotionID   uint
	promotionName string
	affected      int
}

func NewPromotionAppliedMessage(promotionID uint, promotionName string, affected int) *PromotionAppliedMessage {
	return &PromotionAppliedMessage{
		promotionID:   promotionID,
		promotionName: promotionName,
		affected:      affected,
	}
}

func (b *PromotionAppliedMessage) Build() string {
	return fmt.Sprintf("🔔 Khuyến mãi %d (%s) đã được áp vào %d lịch giá.", b.promotionID, b.promotionName, b.affected)
}
