package api

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/booking"
	"class-booking/provider"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreatePaymentIntent .
// @router /create-payment-intent [POST]
func CreatePaymentIntent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req booking.CreatePaymentIntentReq
	err = adaptor.BindAndValidate(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.PaymentService.CreatePaymentIntent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
