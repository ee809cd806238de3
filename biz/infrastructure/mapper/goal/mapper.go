package goal

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/context"
)

const (
	prefixGoalCacheKey = "cache:wellness_goal"
	CollectionName     = "wellness_goal"
)

type IMongoMapper interface {
	Insert(ctx context.Context, g *WellnessGoal) error
	FindOne(ctx context.Context, goalId int64) (*WellnessGoal, error)
	UpdateProgress(ctx context.Context, goalId, progress int64) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Insert(ctx context.Context, g *WellnessGoal) error {
	_, err := m.conn.InsertOneNoCache(ctx, g)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, goalId int64) (*WellnessGoal, error) {
	var g WellnessGoal
	err := m.conn.FindOneNoCache(ctx, &g, bson.M{"goal_id": goalId})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (m *MongoMapper) UpdateProgress(ctx context.Context, goalId, progress int64) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"goal_id": goalId},
		bson.M{"$set": bson.M{"current_progress": progress}})
	return err
}
