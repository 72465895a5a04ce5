package api

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/booking"
	"class-booking/provider"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SignIn .
// @router /jwt [POST]
func SignIn(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.SignInReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// Register .
// @router /users [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.RegisterReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.Register(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListInstructors .
// @router /instructors [GET]
func ListInstructors(ctx context.Context, c *app.RequestContext) {
	var req booking.ListInstructorsReq

	p := provider.Get()
	resp, err := p.UserService.ListInstructors(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListUsers .
// @router /users [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	var req booking.ListUsersReq

	p := provider.Get()
	resp, err := p.UserService.ListUsers(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetUser .
// @router /users/:email [GET]
func GetUser(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.GetUserReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.GetUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetRole .
// @router /role/:email [GET]
func GetRole(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.GetRoleReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.GetRole(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateRole .
// @router /users/:id [PUT]
func UpdateRole(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.UpdateRoleReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.UpdateRole(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteUser .
// @router /users/:id [DELETE]
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.DeleteUserReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.DeleteUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AddInstructorClass .
// @router /instructors/:email [PUT]
func AddInstructorClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.AddInstructorClassReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.AddInstructorClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
