package provider

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/service"
	"class-booking/biz/infrastructure/cache"
	"class-booking/biz/infrastructure/config"
	"class-booking/biz/infrastructure/payment"
	"class-booking/biz/infrastructure/repository/class"
	"class-booking/biz/infrastructure/repository/user"
	"context"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	Signer            *adaptor.JwtSigner
	UserService       service.IUserService
	ClassService      service.IClassService
	EnrollmentService service.IEnrollmentService
	PaymentService    service.IPaymentService
	UserMapper        *user.MongoMapper
}

func Get() *Provider {
	return provider
}

// Close 断开mongo连接, 课程与用户集合共用同一个客户端
func (p *Provider) Close(ctx context.Context) error {
	return p.UserMapper.Disconnect(ctx)
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.ClassServiceSet,
	service.EnrollmentServiceSet,
	service.PaymentServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	adaptor.NewJwtSigner,
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.IMongoMapper), new(*class.MongoMapper)),
	cache.NewRoleCacheMapper,
	wire.Bind(new(cache.IRoleCacheMapper), new(*cache.RoleCacheMapper)),
	payment.NewMidtransGateway,
	wire.Bind(new(payment.IGateway), new(*payment.MidtransGateway)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
