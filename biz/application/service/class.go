package service

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/booking"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/repository/class"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IClassService interface {
	ListInstructorClasses(ctx context.Context, req *booking.ListInstructorClassesReq) ([]*class.Class, error)
	ListClasses(ctx context.Context, req *booking.ListClassesReq) ([]*class.Class, error)
	CreateClass(ctx context.Context, req *booking.CreateClassReq) (*booking.InsertResp, error)
	ReviewClass(ctx context.Context, req *booking.ReviewClassReq) (*booking.UpdateResp, error)
	GetClassPrice(ctx context.Context, req *booking.GetClassPriceReq) (*booking.GetClassPriceResp, error)
}

type ClassService struct {
	ClassMapper class.IMongoMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

var reviewStatuses = []string{consts.StatusApproved, consts.StatusDenied}

// ListInstructorClasses 获取讲师名下的课程
func (s *ClassService) ListInstructorClasses(ctx context.Context, req *booking.ListInstructorClassesReq) ([]*class.Class, error) {
	classes, err := s.ClassMapper.FindByInstructor(ctx, req.Email)
	if err != nil {
		log.CtxError(ctx, "list classes by instructor failed: %v", err)
		return nil, consts.ErrQuery
	}
	return classes, nil
}

// ListClasses status 为 all 时返回全部课程
func (s *ClassService) ListClasses(ctx context.Context, req *booking.ListClassesReq) ([]*class.Class, error) {
	status := req.Status
	if status == consts.StatusAll {
		status = ""
	}
	classes, err := s.ClassMapper.FindByStatus(ctx, status)
	if err != nil {
		log.CtxError(ctx, "list classes failed: %v", err)
		return nil, consts.ErrQuery
	}
	return classes, nil
}

// CreateClass 新课程一律待审核, 座位计数只由选课流程修改
func (s *ClassService) CreateClass(ctx context.Context, req *booking.CreateClassReq) (*booking.InsertResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetEmail() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c := &class.Class{}
	if err := copier.Copy(c, req); err != nil {
		return nil, consts.ErrInvalidParams
	}
	c.InstructorEmail = meta.GetEmail()
	c.Status = consts.StatusPending
	c.NumberOfStudents = 0

	if err := s.ClassMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "insert class failed: %v", err)
		return nil, consts.ErrInsert
	}
	return &booking.InsertResp{InsertedId: c.ID.Hex()}, nil
}

// ReviewClass approved/denied 修改状态, 其它文本作为反馈, 两者互不影响
func (s *ClassService) ReviewClass(ctx context.Context, req *booking.ReviewClassReq) (*booking.UpdateResp, error) {
	patch := &class.Patch{}
	if lo.Contains(reviewStatuses, req.Text) {
		patch.Status = lo.ToPtr(req.Text)
	} else {
		patch.Feedback = lo.ToPtr(req.Text)
	}

	res, err := s.ClassMapper.Update(ctx, req.Id, patch)
	switch {
	case errors.Is(err, consts.ErrInvalidObjectId):
		return nil, err
	case err != nil:
		log.CtxError(ctx, "review class failed, id=%s, err=%v", req.Id, err)
		return nil, consts.ErrUpdate
	case res.MatchedCount == 0:
		return nil, consts.ErrNotFound
	}
	return &booking.UpdateResp{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *ClassService) GetClassPrice(ctx context.Context, req *booking.GetClassPriceReq) (*booking.GetClassPriceResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, classLookupErr(ctx, err)
	}
	return &booking.GetClassPriceResp{Price: c.Price}, nil
}

func classLookupErr(ctx context.Context, err error) error {
	if errors.Is(err, consts.ErrNotFound) || errors.Is(err, consts.ErrInvalidObjectId) {
		return err
	}
	log.CtxError(ctx, "find class failed: %v", err)
	return consts.ErrQuery
}
