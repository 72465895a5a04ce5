package basic

// UserMeta 令牌中携带的用户身份
type UserMeta struct {
	Email string `mapstructure:"email" json:"email"`
}

func (m *UserMeta) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}
