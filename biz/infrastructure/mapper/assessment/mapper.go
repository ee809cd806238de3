package assessment

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/context"
)

const (
	prefixAssessmentCacheKey = "cache:assessment"
	CollectionName           = "assessment"
)

type IMongoMapper interface {
	Insert(ctx context.Context, a *Assessment) error
	FindOne(ctx context.Context, assessmentId int64) (*Assessment, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Insert(ctx context.Context, a *Assessment) error {
	_, err := m.conn.InsertOneNoCache(ctx, a)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, assessmentId int64) (*Assessment, error) {
	var a Assessment
	err := m.conn.FindOneNoCache(ctx, &a, bson.M{"assessment_id": assessmentId})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
