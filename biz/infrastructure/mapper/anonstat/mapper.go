package anonstat

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const (
	prefixAnonStatCacheKey = "cache:anonymous_stat"
	CollectionName         = "anonymous_stat"
)

type IMongoMapper interface {
	// Contribute 向周期聚合累加一条得分, 单次原子操作
	Contribute(ctx context.Context, period string, score int64) error
	FindOne(ctx context.Context, period string) (*AnonymousStat, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Contribute(ctx context.Context, period string, score int64) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"_id": period},
		bson.M{"$inc": bson.M{"contributors": int64(1), "total_score": score}},
		options.Update().SetUpsert(true))
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, period string) (*AnonymousStat, error) {
	var s AnonymousStat
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{"_id": period})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
