package middleware

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/basic"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
)

type TokenVerifier interface {
	Verify(token string) (*basic.UserMeta, error)
}

type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (string, error)
}

// RequireAuthenticated 校验Bearer令牌, 通过后把邮箱写入请求上下文
func RequireAuthenticated(verifier TokenVerifier) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token := adaptor.ExtractBearerToken(c)
		if token == "" {
			adaptor.AbortWithError(c, consts.ErrNotAuthentication)
			return
		}
		meta, err := verifier.Verify(token)
		if err != nil {
			log.CtxInfo(ctx, "verify token failed, path=%s, err=%v", c.FullPath(), err)
			adaptor.AbortWithError(c, consts.ErrNotAuthentication)
			return
		}
		c.Next(adaptor.InjectUserMeta(ctx, meta))
	}
}

// RequireRole 每次请求都重新解析角色, 必须挂在 RequireAuthenticated 之后
func RequireRole(resolver RoleResolver, role string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		email := adaptor.ExtractUserMeta(ctx).GetEmail()
		if email == "" {
			adaptor.AbortWithError(c, consts.ErrNotAuthentication)
			return
		}
		actual, err := resolver.ResolveRole(ctx, email)
		switch {
		case errors.Is(err, consts.ErrNotFound):
			adaptor.AbortWithError(c, consts.ErrForbidden)
			return
		case err != nil:
			log.CtxError(ctx, "resolve role failed, email=%s, err=%v", email, err)
			adaptor.AbortWithError(c, err)
			return
		}
		if actual != role {
			adaptor.AbortWithError(c, consts.ErrForbidden)
			return
		}
		c.Next(ctx)
	}
}
