package service

import (
	"class-booking/biz/application/dto/booking"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/repository/class"
	"class-booking/biz/infrastructure/repository/user"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const enrollmentTracerName = "class-booking/enrollment"

type IEnrollmentService interface {
	SelectClass(ctx context.Context, req *booking.SelectClassReq) (*booking.SelectClassResp, error)
	ReplaceSelectedClasses(ctx context.Context, req *booking.ReplaceSelectedClassesReq) (*booking.UpdateResp, error)
}

type EnrollmentService struct {
	UserMapper  user.IMongoMapper
	ClassMapper class.IMongoMapper
}

var EnrollmentServiceSet = wire.NewSet(
	wire.Struct(new(EnrollmentService), "*"),
	wire.Bind(new(IEnrollmentService), new(*EnrollmentService)),
)

// SelectClass 学生选课
// 讲师、学生、课程三个文档分别更新, 没有事务也没有回滚, 任一步失败都不影响其它步骤,
// 每一步的结果都原样返回给调用方. 并发选同一门课时座位数可能被减为负数.
func (s *EnrollmentService) SelectClass(ctx context.Context, req *booking.SelectClassReq) (*booking.SelectClassResp, error) {
	ctx, span := otel.Tracer(enrollmentTracerName).Start(ctx, "SelectClass",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("class.id", req.ClassId)),
	)
	defer span.End()

	// 前置检查: 三个文档都存在才开始修改
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, classLookupErr(ctx, err)
	}
	if _, err = s.findUser(ctx, req.Inst); err != nil {
		return nil, err
	}
	if _, err = s.findUser(ctx, req.User); err != nil {
		return nil, err
	}
	classID := c.ID.Hex()

	resp := &booking.SelectClassResp{}
	resp.Instructor = s.step(ctx, "instructor.total_student", func(ctx context.Context) (*mongo.UpdateResult, error) {
		return s.UserMapper.IncTotalStudent(ctx, req.Inst, 1)
	})
	resp.Student = s.step(ctx, "student.selected_classes", func(ctx context.Context) (*mongo.UpdateResult, error) {
		return s.UserMapper.AddSelectedClass(ctx, req.User, classID)
	})
	resp.Class = s.step(ctx, "class.seats", func(ctx context.Context) (*mongo.UpdateResult, error) {
		return s.ClassMapper.TakeSeat(ctx, classID)
	})

	if !resp.Instructor.OK() || !resp.Student.OK() || !resp.Class.OK() {
		log.CtxError(ctx, "select class partially applied, class=%s, inst=%s, user=%s, resp=%+v",
			classID, req.Inst, req.User, resp)
		span.SetStatus(otelcodes.Error, "partially applied")
	}
	return resp, nil
}

// ReplaceSelectedClasses 用请求体整体覆盖学生的已选课程
// 不会回退课程座位数和讲师的学生数
// TODO: 退课后回退 available_seats/number_of_students/total_student, 需要先确定是否由前端另行处理
func (s *EnrollmentService) ReplaceSelectedClasses(ctx context.Context, req *booking.ReplaceSelectedClassesReq) (*booking.UpdateResp, error) {
	selected := lo.Uniq(req.SelectedClasses)
	res, err := s.UserMapper.UpdateByEmail(ctx, req.Email, &user.Patch{SelectedClasses: &selected})
	if err != nil {
		log.CtxError(ctx, "replace selected classes failed, email=%s, err=%v", req.Email, err)
		return nil, consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return nil, consts.ErrNotFound
	}
	return &booking.UpdateResp{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *EnrollmentService) findUser(ctx context.Context, email string) (*user.User, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, consts.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		log.CtxError(ctx, "find user failed, email=%s, err=%v", email, err)
		return nil, consts.ErrQuery
	}
}

func (s *EnrollmentService) step(ctx context.Context, name string, update func(ctx context.Context) (*mongo.UpdateResult, error)) booking.StepResult {
	ctx, span := otel.Tracer(enrollmentTracerName).Start(ctx, name)
	defer span.End()

	res, err := update(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		log.CtxError(ctx, "enrollment step %s failed: %v", name, err)
		return booking.StepResult{Error: err.Error()}
	}
	return booking.StepResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
