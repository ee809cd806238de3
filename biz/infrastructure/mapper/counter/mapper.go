package counter

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const (
	prefixCounterCacheKey = "cache:counter"
	CollectionName        = "counter"
)

type IMongoMapper interface {
	// Alloc 为family分配下一个id, 返回自增前的值, 首次分配返回0
	Alloc(ctx context.Context, family string) (int64, error)
	// Count 返回family已创建的记录数, 未分配过时为0
	Count(ctx context.Context, family string) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Alloc(ctx context.Context, family string) (int64, error) {
	// $inc + upsert 保证分配是单个原子操作, id只增不回收
	var c Counter
	err := m.conn.FindOneAndUpdateNoCache(ctx, &c,
		bson.M{"_id": family},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After))
	if err != nil {
		return 0, err
	}
	return c.Seq - 1, nil
}

func (m *MongoMapper) Count(ctx context.Context, family string) (int64, error) {
	var c Counter
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{"_id": family})
	if errors.Is(err, monc.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.Seq, nil
}
