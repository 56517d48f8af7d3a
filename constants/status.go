package constants

// Promotion status
const (
	PromotionStatusInactive = 0
	PromotionStatusActive   = 1
	PromotionStatusExpired  = 2
)

// Promotion type - bên chịu chi phí giảm giá
const (
	PromotionTypeProvider = 1
	PromotionTypeSystem   = 2
	PromotionTypeBoth     = 3
)

// Discount type
const (
	DiscountTypePercentage  = 1
	DiscountTypeFixedAmount = 2
)

// Room status
const (
	RoomStatusInactive    = 0
	RoomStatusActive      = 1
	RoomStatusMaintenance = 2
)

// Hotel status
const (
	HotelStatusInactive = 0
	HotelStatusActive   = 1
)

// User role
const (
	RoleSuperAdmin = 1
	RoleProvider   = 2
	RoleCustomer   = 3
)
