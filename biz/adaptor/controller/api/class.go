package api

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/booking"
	"class-booking/provider"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListInstructorClasses .
// @router /classes/:email [GET]
func ListInstructorClasses(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.ListInstructorClassesReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListInstructorClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListClasses .
// @router /allclass/:status [GET]
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.ListClassesReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateClass .
// @router /classes [POST]
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.CreateClassReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ReviewClass .
// @router /allclass/:id [PATCH]
func ReviewClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.ReviewClassReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ReviewClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClassPrice .
// @router /selected-classes/:id [GET]
func GetClassPrice(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.GetClassPriceReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetClassPrice(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
