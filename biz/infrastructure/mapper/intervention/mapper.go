package intervention

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
	prefixInterventionCacheKey = "cache:crisis_intervention"
	CollectionName             = "crisis_intervention"
)

type IMongoMapper interface {
	Upsert(ctx context.Context, i *CrisisIntervention) error
	FindOne(ctx context.Context, owner string, level int64) (*CrisisIntervention, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Upsert(ctx context.Context, i *CrisisIntervention) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"owner": i.Owner, "level": i.Level},
		bson.M{"$set": bson.M{
			"trigger_reason": i.TriggerReason,
			"risk_label":     i.RiskLabel,
			"create_time":    i.CreateTime,
		}},
		options.Update().SetUpsert(true))
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, owner string, level int64) (*CrisisIntervention, error) {
	var i CrisisIntervention
	err := m.conn.FindOneNoCache(ctx, &i, bson.M{"owner": owner, "level": level})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}
