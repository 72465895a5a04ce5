package booking

type ListInstructorClassesReq struct {
	Email string `path:"email" validate:"required"`
}

type ListClassesReq struct {
	Status string `path:"status" validate:"oneof=all pending approved denied"`
}

// CreateClassReq 讲师邮箱取自令牌, 状态固定为 pending
type CreateClassReq struct {
	Name           string  `json:"name" validate:"required"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructor_name"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int64   `json:"available_seats" validate:"gte=0"`
}

type ReviewClassReq struct {
	Id   string `path:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

type GetClassPriceReq struct {
	Id string `path:"id" validate:"required"`
}

type GetClassPriceResp struct {
	Price float64 `json:"price"`
}
