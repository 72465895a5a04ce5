package adaptor

import (
	"class-booking/biz/application/dto/basic"
	"class-booking/biz/infrastructure/consts"
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
)

type userMetaKey struct{}

func InjectUserMeta(ctx context.Context, meta *basic.UserMeta) context.Context {
	return context.WithValue(ctx, userMetaKey{}, meta)
}

// ExtractUserMeta 取出鉴权中间件写入的用户信息, 未鉴权时返回空对象
func ExtractUserMeta(ctx context.Context) *basic.UserMeta {
	meta, ok := ctx.Value(userMetaKey{}).(*basic.UserMeta)
	if !ok || meta == nil {
		return new(basic.UserMeta)
	}
	return meta
}

// ExtractBearerToken 从 Authorization 头中取出令牌
func ExtractBearerToken(c *app.RequestContext) string {
	header := strings.TrimSpace(string(c.GetHeader(consts.AuthHeader)))
	if header == "" {
		return ""
	}
	if len(header) >= len(consts.BearerPrefix) && strings.EqualFold(header[:len(consts.BearerPrefix)], consts.BearerPrefix) {
		return strings.TrimSpace(header[len(consts.BearerPrefix):])
	}
	return ""
}
