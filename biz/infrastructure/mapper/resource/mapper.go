package resource

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/context"
)

const (
	prefixResourceCacheKey = "cache:therapeutic_resource"
	CollectionName         = "therapeutic_resource"
)

type IMongoMapper interface {
	Insert(ctx context.Context, r *TherapeuticResource) error
	FindOne(ctx context.Context, category string, resourceId int64) (*TherapeuticResource, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Insert(ctx context.Context, r *TherapeuticResource) error {
	_, err := m.conn.InsertOneNoCache(ctx, r)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, category string, resourceId int64) (*TherapeuticResource, error) {
	var r TherapeuticResource
	err := m.conn.FindOneNoCache(ctx, &r, bson.M{
		"category":    category,
		"resource_id": resourceId,
	})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
