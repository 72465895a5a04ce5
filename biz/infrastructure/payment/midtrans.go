package payment

import (
	"class-booking/biz/infrastructure/config"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const httpTimeout = 30 * time.Second

// IGateway 支付网关, amount 为最小货币单位
type IGateway interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

type MidtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(config *config.Config) *MidtransGateway {
	env := midtrans.Sandbox
	if config.Payment.Production {
		env = midtrans.Production
	}
	return newMidtransGateway(config.Payment.ServerKey, env, otelhttp.NewTransport(http.DefaultTransport))
}

// newMidtransGateway http客户端只挂在当前snap客户端上, 不修改 midtrans 包级默认值
func newMidtransGateway(serverKey string, env midtrans.EnvironmentType, transport http.RoundTripper) *MidtransGateway {
	g := &MidtransGateway{}
	g.client.New(serverKey, env)
	g.client.HttpClient = &midtrans.HttpClientImplementation{
		HttpClient: &http.Client{
			Timeout:   httpTimeout,
			Transport: transport,
		},
		Logger: midtrans.GetDefaultLogger(env),
	}
	return g
}

// CreateIntent 创建一笔Snap交易, 返回的token作为客户端凭证
func (g *MidtransGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", errors.New("invalid amount")
	}
	orderID := uuid.NewString()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		log.CtxError(ctx, "midtrans create transaction failed, order: %s, err: %v", orderID, err.GetMessage())
		return "", err
	}
	log.CtxInfo(ctx, "midtrans transaction created, order: %s", orderID)
	return resp.Token, nil
}
