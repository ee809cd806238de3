package progress

import (
	"errors"
	"time"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const (
	prefixProgressCacheKey = "cache:progress_tracking"
	CollectionName         = "progress_tracking"
)

type IMongoMapper interface {
	// IncrSessions 完成一次会话, 记录不存在时创建
	IncrSessions(ctx context.Context, owner string) error
	// AddStrategy 记录一项应对策略, 集合语义, 重复添加不生效
	AddStrategy(ctx context.Context, owner, strategy string) error
	FindOne(ctx context.Context, owner string) (*ProgressTracking, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) IncrSessions(ctx context.Context, owner string) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"_id": owner},
		bson.M{
			"$inc": bson.M{"sessions_completed": int64(1), "current_streak": int64(1)},
			"$set": bson.M{"last_session": time.Now()},
		},
		options.Update().SetUpsert(true))
	return err
}

func (m *MongoMapper) AddStrategy(ctx context.Context, owner, strategy string) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"_id": owner},
		bson.M{"$addToSet": bson.M{"coping_strategies": strategy}},
		options.Update().SetUpsert(true))
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, owner string) (*ProgressTracking, error) {
	var p ProgressTracking
	err := m.conn.FindOneNoCache(ctx, &p, bson.M{"_id": owner})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
