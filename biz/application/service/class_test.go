package service

import (
	"class-booking/biz/adaptor"
	"class-booking/biz/application/dto/basic"
	"class-booking/biz/application/dto/booking"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/repository/class"
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateClass_ForcesPendingAndTokenEmail(t *testing.T) {
	classes := newFakeClassMapper()
	svc := &ClassService{ClassMapper: classes}
	ctx := adaptor.InjectUserMeta(context.Background(), &basic.UserMeta{Email: "inst@x.com"})

	resp, err := svc.CreateClass(ctx, &booking.CreateClassReq{
		Name:           "Yoga",
		InstructorName: "Inst",
		Price:          25,
		AvailableSeats: 10,
	})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(resp.InsertedId)
	require.NoError(t, err)
	c := classes.Get(oid)
	require.NotNil(t, c)
	assert.Equal(t, "Yoga", c.Name)
	assert.Equal(t, "inst@x.com", c.InstructorEmail)
	assert.Equal(t, consts.StatusPending, c.Status)
	assert.Equal(t, int64(10), c.AvailableSeats)
	assert.Zero(t, c.NumberOfStudents)
}

func TestCreateClass_RequiresIdentity(t *testing.T) {
	svc := &ClassService{ClassMapper: newFakeClassMapper()}

	_, err := svc.CreateClass(context.Background(), &booking.CreateClassReq{Name: "Yoga"})
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestListClasses(t *testing.T) {
	classes := newFakeClassMapper(
		&class.Class{Name: "a", Status: consts.StatusPending, InstructorEmail: "i@x.com"},
		&class.Class{Name: "b", Status: consts.StatusApproved, InstructorEmail: "i@x.com"},
		&class.Class{Name: "c", Status: consts.StatusApproved, InstructorEmail: "j@x.com"},
	)
	svc := &ClassService{ClassMapper: classes}
	names := func(cs []*class.Class) []string {
		return lo.Map(cs, func(c *class.Class, _ int) string { return c.Name })
	}

	all, err := svc.ListClasses(context.Background(), &booking.ListClassesReq{Status: consts.StatusAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	approved, err := svc.ListClasses(context.Background(), &booking.ListClassesReq{Status: consts.StatusApproved})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, names(approved))

	denied, err := svc.ListClasses(context.Background(), &booking.ListClassesReq{Status: consts.StatusDenied})
	require.NoError(t, err)
	assert.Empty(t, denied)

	mine, err := svc.ListInstructorClasses(context.Background(), &booking.ListInstructorClassesReq{Email: "i@x.com"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, names(mine))
}

func TestReviewClass(t *testing.T) {
	cases := []struct {
		text     string
		status   string
		feedback *string
	}{
		{text: consts.StatusApproved, status: consts.StatusApproved},
		{text: consts.StatusDenied, status: consts.StatusDenied},
		{text: "comment-x", status: consts.StatusPending, feedback: lo.ToPtr("comment-x")},
		{text: consts.StatusPending, status: consts.StatusPending, feedback: lo.ToPtr(consts.StatusPending)},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			c := &class.Class{Name: "Yoga", Status: consts.StatusPending}
			classes := newFakeClassMapper(c)
			svc := &ClassService{ClassMapper: classes}

			resp, err := svc.ReviewClass(context.Background(), &booking.ReviewClassReq{Id: c.ID.Hex(), Text: tc.text})
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.MatchedCount)

			got := classes.Get(c.ID)
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.feedback, got.Feedback)
		})
	}
}

func TestReviewClass_UnknownClass(t *testing.T) {
	svc := &ClassService{ClassMapper: newFakeClassMapper()}

	_, err := svc.ReviewClass(context.Background(), &booking.ReviewClassReq{Id: primitive.NewObjectID().Hex(), Text: "approved"})
	assert.ErrorIs(t, err, consts.ErrNotFound)

	_, err = svc.ReviewClass(context.Background(), &booking.ReviewClassReq{Id: "zzz", Text: "approved"})
	assert.ErrorIs(t, err, consts.ErrInvalidObjectId)
}

func TestGetClassPrice(t *testing.T) {
	c := &class.Class{Name: "Yoga", Price: 25.5}
	svc := &ClassService{ClassMapper: newFakeClassMapper(c)}

	resp, err := svc.GetClassPrice(context.Background(), &booking.GetClassPriceReq{Id: c.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, 25.5, resp.Price)

	_, err = svc.GetClassPrice(context.Background(), &booking.GetClassPriceReq{Id: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}
