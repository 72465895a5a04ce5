package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 鉴权相关错误
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("unauthorized access"))
	ErrInvalidToken      = NewErrno(codes.Unauthenticated, errors.New("invalid token"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden access"))
	ErrSignToken         = NewErrno(codes.Internal, errors.New("sign token failed"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("internal error, please retry"))
	ErrPayment       = NewErrno(codes.Unavailable, errors.New("create payment intent failed"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrInsert          = NewErrno(codes.Unknown, errors.New("insert failed"))
	ErrUpdate          = NewErrno(codes.Unknown, errors.New("update failed"))
	ErrDelete          = NewErrno(codes.Unknown, errors.New("delete failed"))
	ErrQuery           = NewErrno(codes.Unknown, errors.New("query failed"))
)
