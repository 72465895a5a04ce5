package service

import (
	"class-booking/biz/infrastructure/cache"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/repository/class"
	"class-booking/biz/infrastructure/repository/user"
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeUserMapper 内存版用户集合, 每个方法对单个文档原子
type fakeUserMapper struct {
	mu    sync.Mutex
	users []*user.User
	calls int

	incErr error
}

var _ user.IMongoMapper = (*fakeUserMapper)(nil)

func newFakeUserMapper(users ...*user.User) *fakeUserMapper {
	m := &fakeUserMapper{}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.users = append(m.users, u)
	}
	return m
}

func cloneUser(u *user.User) *user.User {
	cp := *u
	if u.TotalStudent != nil {
		cp.TotalStudent = lo.ToPtr(*u.TotalStudent)
	}
	if u.NumberOfClasses != nil {
		cp.NumberOfClasses = lo.ToPtr(*u.NumberOfClasses)
	}
	cp.NameOfClasses = cloneStrings(u.NameOfClasses)
	cp.SelectedClasses = cloneStrings(u.SelectedClasses)
	return &cp
}

// cloneStrings 保留 nil 与空数组的区别, 与 bson 解码一致
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

func (m *fakeUserMapper) byEmail(email string) *user.User {
	u, _ := lo.Find(m.users, func(u *user.User) bool { return u.Email == email })
	return u
}

func (m *fakeUserMapper) byID(id string) (*user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	u, _ := lo.Find(m.users, func(u *user.User) bool { return u.ID == oid })
	return u, nil
}

// Get 测试断言用, 直接读取存储状态
func (m *fakeUserMapper) Get(email string) *user.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.byEmail(email)
	if u == nil {
		return nil
	}
	return cloneUser(u)
}

func (m *fakeUserMapper) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *fakeUserMapper) Insert(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
	}
	m.users = append(m.users, cloneUser(u))
	return nil
}

func (m *fakeUserMapper) FindOne(ctx context.Context, id string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, consts.ErrNotFound
	}
	return cloneUser(u), nil
}

func (m *fakeUserMapper) FindOneByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u := m.byEmail(email)
	if u == nil {
		return nil, consts.ErrNotFound
	}
	return cloneUser(u), nil
}

func (m *fakeUserMapper) FindMany(ctx context.Context, role *string) ([]*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	res := lo.Filter(m.users, func(u *user.User, _ int) bool { return role == nil || u.Role == *role })
	return lo.Map(res, func(u *user.User, _ int) *user.User { return cloneUser(u) }), nil
}

func applyUserPatch(u *user.User, patch *user.Patch) {
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.TotalStudent != nil {
		u.TotalStudent = lo.ToPtr(*patch.TotalStudent)
	}
	if patch.NumberOfClasses != nil {
		u.NumberOfClasses = lo.ToPtr(*patch.NumberOfClasses)
	}
	if patch.NameOfClasses != nil {
		u.NameOfClasses = append([]string{}, *patch.NameOfClasses...)
	}
	if patch.SelectedClasses != nil {
		u.SelectedClasses = append([]string{}, *patch.SelectedClasses...)
	}
}

func (m *fakeUserMapper) Update(ctx context.Context, id string, patch *user.Patch) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return &mongo.UpdateResult{}, nil
	}
	applyUserPatch(u, patch)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *fakeUserMapper) UpdateByEmail(ctx context.Context, email string, patch *user.Patch) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u := m.byEmail(email)
	if u == nil {
		return &mongo.UpdateResult{}, nil
	}
	applyUserPatch(u, patch)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *fakeUserMapper) IncTotalStudent(ctx context.Context, email string, increment int64) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.incErr != nil {
		return nil, m.incErr
	}
	u := m.byEmail(email)
	if u == nil {
		return &mongo.UpdateResult{}, nil
	}
	u.TotalStudent = lo.ToPtr(lo.FromPtr(u.TotalStudent) + increment)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *fakeUserMapper) AddSelectedClass(ctx context.Context, email string, classID string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u := m.byEmail(email)
	if u == nil {
		return &mongo.UpdateResult{}, nil
	}
	if lo.Contains(u.SelectedClasses, classID) {
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}
	u.SelectedClasses = append(u.SelectedClasses, classID)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *fakeUserMapper) AddClassName(ctx context.Context, email string, name string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u := m.byEmail(email)
	if u == nil {
		return &mongo.UpdateResult{}, nil
	}
	u.NameOfClasses = append(u.NameOfClasses, name)
	u.NumberOfClasses = lo.ToPtr(lo.FromPtr(u.NumberOfClasses) + 1)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *fakeUserMapper) Delete(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	before := len(m.users)
	m.users = lo.Reject(m.users, func(u *user.User, _ int) bool { return u.ID == oid })
	return int64(before - len(m.users)), nil
}

// fakeClassMapper 内存版课程集合
type fakeClassMapper struct {
	mu      sync.Mutex
	classes []*class.Class
}

var _ class.IMongoMapper = (*fakeClassMapper)(nil)

func newFakeClassMapper(classes ...*class.Class) *fakeClassMapper {
	m := &fakeClassMapper{}
	for _, c := range classes {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		m.classes = append(m.classes, c)
	}
	return m
}

func cloneClass(c *class.Class) *class.Class {
	cp := *c
	if c.Feedback != nil {
		cp.Feedback = lo.ToPtr(*c.Feedback)
	}
	return &cp
}

func (m *fakeClassMapper) byID(id string) (*class.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	c, _ := lo.Find(m.classes, func(c *class.Class) bool { return c.ID == oid })
	return c, nil
}

func (m *fakeClassMapper) Get(id primitive.ObjectID) *class.Class {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, _ := lo.Find(m.classes, func(c *class.Class) bool { return c.ID == id })
	if c == nil {
		return nil
	}
	return cloneClass(c)
}

func (m *fakeClassMapper) Insert(ctx context.Context, c *class.Class) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.classes = append(m.classes, cloneClass(c))
	return nil
}

func (m *fakeClassMapper) FindOne(ctx context.Context, id string) (*class.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, consts.ErrNotFound
	}
	return cloneClass(c), nil
}

func (m *fakeClassMapper) FindByInstructor(ctx context.Context, email string) ([]*class.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := lo.Filter(m.classes, func(c *class.Class, _ int) bool { return c.InstructorEmail == email })
	return lo.Map(res, func(c *class.Class, _ int) *class.Class { return cloneClass(c) }), nil
}

func (m *fakeClassMapper) FindByStatus(ctx context.Context, status string) ([]*class.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := lo.Filter(m.classes, func(c *class.Class, _ int) bool { return status == "" || c.Status == status })
	return lo.Map(res, func(c *class.Class, _ int) *class.Class { return cloneClass(c) }), nil
}

func (m *fakeClassMapper) Update(ctx context.Context, id string, patch *class.Patch) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &mongo.UpdateResult{}, nil
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Feedback != nil {
		c.Feedback = lo.ToPtr(*patch.Feedback)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *fakeClassMapper) TakeSeat(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &mongo.UpdateResult{}, nil
	}
	c.AvailableSeats--
	c.NumberOfStudents++
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// fakeRoleCache 记录缓存读写, 用于校验失效逻辑
type fakeRoleCache struct {
	mu    sync.Mutex
	roles map[string]string
}

var _ cache.IRoleCacheMapper = (*fakeRoleCache)(nil)

func newFakeRoleCache() *fakeRoleCache {
	return &fakeRoleCache{roles: map[string]string{}}
}

func (f *fakeRoleCache) Get(ctx context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[email]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return role, nil
}

func (f *fakeRoleCache) Set(ctx context.Context, email string, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[email] = role
	return nil
}

func (f *fakeRoleCache) Delete(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.roles, email)
	return nil
}

func (f *fakeRoleCache) Has(email string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.roles[email]
	return ok
}
