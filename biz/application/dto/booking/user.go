package booking

type SignInReq struct {
	Email string `json:"email" validate:"required,email"`
}

type SignInResp struct {
	Token        string `json:"token"`
	AccessExpire int64  `json:"accessExpire"`
}

type ListInstructorsReq struct{}

type ListUsersReq struct{}

type GetRoleReq struct {
	Email string `path:"email" validate:"required"`
}

type GetRoleResp struct {
	Role string `json:"role"`
}

type GetUserReq struct {
	Email string `path:"email" validate:"required"`
}

type RegisterReq struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo"`
}

type UpdateRoleReq struct {
	Id       string `path:"id" validate:"required"`
	RoleText string `json:"roleText" validate:"oneof=student instructor admin"`
}

type DeleteUserReq struct {
	Id string `path:"id" validate:"required"`
}

type AddInstructorClassReq struct {
	Email string `path:"email" validate:"required"`
	Name  string `json:"name" validate:"required"`
}
