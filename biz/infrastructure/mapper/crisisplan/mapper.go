package crisisplan

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
	prefixCrisisPlanCacheKey = "cache:crisis_plan"
	CollectionName           = "crisis_plan"
)

type IMongoMapper interface {
	// Upsert 写入计划正文与联系人, 不覆盖风险等级
	Upsert(ctx context.Context, plan *CrisisSupportPlan) error
	// UpdateRiskLevel 单独更新风险等级, 计划不存在时创建空计划
	UpdateRiskLevel(ctx context.Context, owner, riskLevel string) error
	FindOne(ctx context.Context, owner string) (*CrisisSupportPlan, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Upsert(ctx context.Context, plan *CrisisSupportPlan) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"_id": plan.Owner},
		bson.M{"$set": bson.M{
			"emergency_contacts": plan.EmergencyContacts,
			"hotlines":           plan.Hotlines,
			"plan_text":          plan.PlanText,
			"support_network":    plan.SupportNetwork,
			"update_time":        plan.UpdateTime,
		}},
		options.Update().SetUpsert(true))
	return err
}

func (m *MongoMapper) UpdateRiskLevel(ctx context.Context, owner, riskLevel string) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"_id": owner},
		bson.M{"$set": bson.M{
			"risk_level":  riskLevel,
			"update_time": time.Now(),
		}},
		options.Update().SetUpsert(true))
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, owner string) (*CrisisSupportPlan, error) {
	var plan CrisisSupportPlan
	err := m.conn.FindOneNoCache(ctx, &plan, bson.M{"_id": owner})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
