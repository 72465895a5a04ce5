package adaptor

import (
	"class-booking/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// BindAndValidate 绑定请求参数后按 validate 标签校验, 失败统一返回参数错误
func BindAndValidate(c *app.RequestContext, req any) error {
	if err := c.Bind(req); err != nil {
		return consts.NewErrno(consts.ErrInvalidParams.Code(), err)
	}
	if err := validate.Struct(req); err != nil {
		return consts.NewErrno(consts.ErrInvalidParams.Code(), err)
	}
	return nil
}

// Validate 只做标签校验, 用于无法直接绑定的请求
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return consts.NewErrno(consts.ErrInvalidParams.Code(), err)
	}
	return nil
}
