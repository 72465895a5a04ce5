package user

import (
	"class-booking/biz/infrastructure/config"
	"class-booking/biz/infrastructure/consts"
	"class-booking/biz/infrastructure/util/log"
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "users"
)

type IMongoMapper interface {
	Insert(ctx context.Context, u *User) error
	FindOne(ctx context.Context, id string) (*User, error)
	FindOneByEmail(ctx context.Context, email string) (*User, error)
	FindMany(ctx context.Context, role *string) ([]*User, error)
	Update(ctx context.Context, id string, patch *Patch) (*mongo.UpdateResult, error)
	UpdateByEmail(ctx context.Context, email string, patch *Patch) (*mongo.UpdateResult, error)
	IncTotalStudent(ctx context.Context, email string, increment int64) (*mongo.UpdateResult, error)
	AddSelectedClass(ctx context.Context, email string, classID string) (*mongo.UpdateResult, error)
	AddClassName(ctx context.Context, email string, name string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper db: %s, collection: %s", config.Mongo.DB, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, u *User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, u)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	return m.findOne(ctx, bson.M{consts.ID: oid})
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	return m.findOne(ctx, bson.M{consts.Email: email})
}

func (m *MongoMapper) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, filter)
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindMany role 为空时返回全部用户
func (m *MongoMapper) FindMany(ctx context.Context, role *string) ([]*User, error) {
	users := make([]*User, 0)
	filter := bson.M{}
	if role != nil {
		filter = bson.M{consts.Role: *role}
	}
	err := m.conn.Find(ctx, &users, filter, &options.FindOptions{
		Sort: bson.M{"create_time": 1},
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoMapper) Update(ctx context.Context, id string, patch *Patch) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	patch.UpdateTime = time.Now()
	return m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$set": patch})
}

func (m *MongoMapper) UpdateByEmail(ctx context.Context, email string, patch *Patch) (*mongo.UpdateResult, error) {
	patch.UpdateTime = time.Now()
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{"$set": patch})
}

func (m *MongoMapper) IncTotalStudent(ctx context.Context, email string, increment int64) (*mongo.UpdateResult, error) {
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{
		"$inc": bson.M{
			"total_student": increment,
		},
		"$set": bson.M{
			consts.UpdateTime: time.Now(),
		},
	})
}

// AddSelectedClass 数组不存在时由 $addToSet 自动创建
func (m *MongoMapper) AddSelectedClass(ctx context.Context, email string, classID string) (*mongo.UpdateResult, error) {
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{
		"$addToSet": bson.M{
			"selectedClasses": classID,
		},
		"$set": bson.M{
			consts.UpdateTime: time.Now(),
		},
	})
}

func (m *MongoMapper) AddClassName(ctx context.Context, email string, name string) (*mongo.UpdateResult, error) {
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{
		"$push": bson.M{
			"name_of_classes": name,
		},
		"$inc": bson.M{
			"number_of_classes": 1,
		},
		"$set": bson.M{
			consts.UpdateTime: time.Now(),
		},
	})
}

func (m *MongoMapper) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	return m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
}

// Disconnect 断开底层 mongo 连接, 同一URL的模型共用一个客户端
func (m *MongoMapper) Disconnect(ctx context.Context) error {
	return m.conn.Database().Client().Disconnect(ctx)
}
