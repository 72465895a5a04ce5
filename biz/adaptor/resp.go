package adaptor

import (
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/util"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"errors"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"google.golang.org/grpc/codes"
)

// PostProcess 统一处理响应, 将业务错误转换为HTTP状态码
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.FullPath(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	AbortWithError(c, err)
}

// AbortWithError 写入错误响应并中断后续处理
func AbortWithError(c *app.RequestContext, err error) {
	var errno *consts.Errno
	if errors.As(err, &errno) {
		c.AbortWithStatusJSON(HTTPStatus(errno.Code()), utils.H{
			"code":    int(errno.Code()),
			"message": errno.Error(),
		})
		return
	}
	// 存储或第三方调用失败, 不暴露内部错误
	c.AbortWithStatusJSON(http.StatusInternalServerError, utils.H{
		"code":    int(codes.Unknown),
		"message": consts.ErrCall.Error(),
	})
}

func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
