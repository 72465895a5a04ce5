package api

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/booking"
	"class-booking/provider"
	"context"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SelectClass .
// @router /select-class [PUT]
func SelectClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.SelectClassReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.EnrollmentService.SelectClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ReplaceSelectedClasses 请求体为裸数组, 不能走默认绑定
// @router /selected-classes/:email [PUT]
func ReplaceSelectedClasses(ctx context.Context, c *app.RequestContext) {
	var err error
	req := booking.ReplaceSelectedClassesReq{Email: c.Param("email")}
	if err = sonic.Unmarshal(c.Request.Body(), &req.SelectedClasses); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	if err = adaptor.Validate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.EnrollmentService.ReplaceSelectedClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
