package service

import (
	"class-booking/biz/application/dto/booking"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/payment"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"math"

	"github.com/google/wire"
	"github.com/spf13/cast"
)

type IPaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *booking.CreatePaymentIntentReq) (*booking.CreatePaymentIntentResp, error)
}

type PaymentService struct {
	Gateway payment.IGateway
}

var PaymentServiceSet = wire.NewSet(
	wire.Struct(new(PaymentService), "*"),
	wire.Bind(new(IPaymentService), new(*PaymentService)),
)

// CreatePaymentIntent 价格不合法时返回提示信息, 不调用支付网关
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req *booking.CreatePaymentIntentReq) (*booking.CreatePaymentIntentResp, error) {
	amount, ok := toMinorUnits(req.Price)
	if !ok {
		return &booking.CreatePaymentIntentResp{Message: consts.MsgPriceNotValid}, nil
	}

	secret, err := s.Gateway.CreateIntent(ctx, amount)
	if err != nil {
		log.CtxError(ctx, "create payment intent failed, amount=%d, err=%v", amount, err)
		return nil, consts.ErrPayment
	}
	return &booking.CreatePaymentIntentResp{ClientSecret: secret}, nil
}

// toMinorUnits 价格乘以100转换为最小货币单位
func toMinorUnits(price any) (int64, bool) {
	if _, isBool := price.(bool); isBool || price == nil {
		return 0, false
	}
	p, err := cast.ToFloat64E(price)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return 0, false
	}
	amount := int64(math.Round(p * consts.MinorUnitFactor))
	if amount <= 0 {
		return 0, false
	}
	return amount, true
}
