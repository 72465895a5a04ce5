package handler

import (
	"class-booking/biz/infrastructure/consts"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Index .
// @router / [GET]
func Index(ctx context.Context, c *app.RequestContext) {
	c.String(hconsts.StatusOK, consts.MsgServerListening)
}

// Ping .
// @router /ping [GET]
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(hconsts.StatusOK, utils.H{
		"message": "pong",
	})
}
