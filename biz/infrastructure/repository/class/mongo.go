package class

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
	CollectionName = "classes"
)

type IMongoMapper interface {
	Insert(ctx context.Context, class *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindByInstructor(ctx context.Context, email string) ([]*Class, error)
	FindByStatus(ctx context.Context, status string) ([]*Class, error)
	Update(ctx context.Context, id string, patch *Patch) (*mongo.UpdateResult, error)
	TakeSeat(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper db: %s, collection: %s", config.Mongo.DB, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *Class) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
		class.CreateTime = time.Now()
		class.UpdateTime = class.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByInstructor(ctx context.Context, email string) ([]*Class, error) {
	return m.find(ctx, bson.M{consts.InstructorEmail: email})
}

// FindByStatus status 为空时返回全部课程
func (m *MongoMapper) FindByStatus(ctx context.Context, status string) ([]*Class, error) {
	filter := bson.M{}
	if status != "" {
		filter = bson.M{consts.Status: status}
	}
	return m.find(ctx, filter)
}

func (m *MongoMapper) find(ctx context.Context, filter bson.M) ([]*Class, error) {
	classes := make([]*Class, 0)
	err := m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Sort: bson.M{"create_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *MongoMapper) Update(ctx context.Context, id string, patch *Patch) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	patch.UpdateTime = time.Now()
	return m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$set": patch})
}

// TakeSeat 座位数没有下限, 可以减为负数
func (m *MongoMapper) TakeSeat(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	return m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$inc": bson.M{
			"available_seats":    -1,
			"number_of_students": 1,
		},
		"$set": bson.M{
			consts.UpdateTime: time.Now(),
		},
	})
}
