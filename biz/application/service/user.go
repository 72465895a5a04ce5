package service

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/booking"
	"class-booking/biz/infrastructure/cache"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/repository/user"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IUserService interface {
	SignIn(ctx context.Context, req *booking.SignInReq) (*booking.SignInResp, error)
	Register(ctx context.Context, req *booking.RegisterReq) (*booking.InsertResp, error)
	ListInstructors(ctx context.Context, req *booking.ListInstructorsReq) ([]*user.User, error)
	ListUsers(ctx context.Context, req *booking.ListUsersReq) ([]*user.User, error)
	GetUser(ctx context.Context, req *booking.GetUserReq) (*user.User, error)
	GetRole(ctx context.Context, req *booking.GetRoleReq) (*booking.GetRoleResp, error)
	UpdateRole(ctx context.Context, req *booking.UpdateRoleReq) (*booking.UpdateResp, error)
	DeleteUser(ctx context.Context, req *booking.DeleteUserReq) (*booking.DeleteResp, error)
	AddInstructorClass(ctx context.Context, req *booking.AddInstructorClassReq) (*booking.UpdateResp, error)
	ResolveRole(ctx context.Context, email string) (string, error)
}

type UserService struct {
	UserMapper user.IMongoMapper
	RoleCache  cache.IRoleCacheMapper
	Signer     *adaptor.JwtSigner
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignIn 为邮箱签发令牌, 不校验用户是否存在
func (s *UserService) SignIn(ctx context.Context, req *booking.SignInReq) (*booking.SignInResp, error) {
	token, exp, err := s.Signer.Issue(req.Email)
	if err != nil {
		log.CtxError(ctx, "sign token failed: %v", err)
		return nil, consts.ErrSignToken
	}
	return &booking.SignInResp{
		Token:        token,
		AccessExpire: exp,
	}, nil
}

// Register 邮箱已注册时返回提示信息而不是错误
func (s *UserService) Register(ctx context.Context, req *booking.RegisterReq) (*booking.InsertResp, error) {
	_, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return &booking.InsertResp{Message: consts.MsgAlreadyRegistered}, nil
	case !errors.Is(err, consts.ErrNotFound):
		log.CtxError(ctx, "find user by email failed: %v", err)
		return nil, consts.ErrQuery
	}

	u := &user.User{}
	if err = copier.Copy(u, req); err != nil {
		return nil, consts.ErrInvalidParams
	}
	u.Role = consts.RoleUnset
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "insert user failed: %v", err)
		return nil, consts.ErrInsert
	}
	return &booking.InsertResp{InsertedId: u.ID.Hex()}, nil
}

func (s *UserService) ListInstructors(ctx context.Context, req *booking.ListInstructorsReq) ([]*user.User, error) {
	users, err := s.UserMapper.FindMany(ctx, lo.ToPtr(consts.RoleInstructor))
	if err != nil {
		log.CtxError(ctx, "list instructors failed: %v", err)
		return nil, consts.ErrQuery
	}
	return users, nil
}

func (s *UserService) ListUsers(ctx context.Context, req *booking.ListUsersReq) ([]*user.User, error) {
	users, err := s.UserMapper.FindMany(ctx, nil)
	if err != nil {
		log.CtxError(ctx, "list users failed: %v", err)
		return nil, consts.ErrQuery
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, req *booking.GetUserReq) (*user.User, error) {
	return s.findByEmail(ctx, req.Email)
}

func (s *UserService) GetRole(ctx context.Context, req *booking.GetRoleReq) (*booking.GetRoleResp, error) {
	u, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	return &booking.GetRoleResp{Role: u.Role}, nil
}

// UpdateRole 设为讲师时同时初始化讲师统计字段
func (s *UserService) UpdateRole(ctx context.Context, req *booking.UpdateRoleReq) (*booking.UpdateResp, error) {
	u, err := s.UserMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, s.lookupErr(ctx, err)
	}

	patch := &user.Patch{Role: lo.ToPtr(req.RoleText)}
	if req.RoleText == consts.RoleInstructor {
		patch.TotalStudent = lo.ToPtr[int64](0)
		patch.NumberOfClasses = lo.ToPtr[int64](0)
		patch.NameOfClasses = lo.ToPtr([]string{})
	}
	res, err := s.UserMapper.Update(ctx, req.Id, patch)
	if err != nil {
		log.CtxError(ctx, "update role failed, id=%s, err=%v", req.Id, err)
		return nil, consts.ErrUpdate
	}
	s.invalidateRole(ctx, u.Email)
	return &booking.UpdateResp{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, req *booking.DeleteUserReq) (*booking.DeleteResp, error) {
	u, err := s.UserMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, s.lookupErr(ctx, err)
	}
	n, err := s.UserMapper.Delete(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "delete user failed, id=%s, err=%v", req.Id, err)
		return nil, consts.ErrDelete
	}
	s.invalidateRole(ctx, u.Email)
	return &booking.DeleteResp{DeletedCount: n}, nil
}

// AddInstructorClass 记录讲师新开的课程名并累加课程数
func (s *UserService) AddInstructorClass(ctx context.Context, req *booking.AddInstructorClassReq) (*booking.UpdateResp, error) {
	if _, err := s.findByEmail(ctx, req.Email); err != nil {
		return nil, err
	}
	res, err := s.UserMapper.AddClassName(ctx, req.Email, req.Name)
	if err != nil {
		log.CtxError(ctx, "add instructor class failed, email=%s, err=%v", req.Email, err)
		return nil, consts.ErrUpdate
	}
	return &booking.UpdateResp{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// ResolveRole 供鉴权中间件使用, 配置了缓存时先查缓存
func (s *UserService) ResolveRole(ctx context.Context, email string) (string, error) {
	if role, err := s.RoleCache.Get(ctx, email); err == nil {
		return role, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.CtxError(ctx, "get role cache failed, email=%s, err=%v", email, err)
	}

	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err = s.RoleCache.Set(ctx, email, u.Role); err != nil {
		log.CtxError(ctx, "set role cache failed, email=%s, err=%v", email, err)
	}
	return u.Role, nil
}

func (s *UserService) findByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	if err != nil {
		return nil, s.lookupErr(ctx, err)
	}
	return u, nil
}

// lookupErr 保留 NotFound 与非法id, 其余存储错误统一转换
func (s *UserService) lookupErr(ctx context.Context, err error) error {
	if errors.Is(err, consts.ErrNotFound) || errors.Is(err, consts.ErrInvalidObjectId) {
		return err
	}
	log.CtxError(ctx, "find user failed: %v", err)
	return consts.ErrQuery
}

func (s *UserService) invalidateRole(ctx context.Context, email string) {
	if err := s.RoleCache.Delete(ctx, email); err != nil {
		log.CtxError(ctx, "delete role cache failed, email=%s, err=%v", email, err)
	}
}
