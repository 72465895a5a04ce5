package consts

// 数据库相关
const (
	ID              = "_id"
	Email           = "email"
	Role            = "role"
	Status          = "status"
	Feedback        = "feedback"
	InstructorEmail = "instructor_email"
	UpdateTime      = "update_time"
)

// 角色
const (
	RoleUnset      = ""
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// 课程状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
	StatusAll      = "all"
)

// http
const (
	AuthHeader      = "Authorization"
	BearerPrefix    = "Bearer "
	ContentTypeJson = "application/json"
)

// 默认值
const (
	DefaultAccessExpire = 3600
	MinorUnitFactor     = 100
)

// 返回消息
const (
	MsgServerListening   = "Server is listening"
	MsgAlreadyRegistered = "user already registered"
	MsgPriceNotValid     = "Price not valid"
)
