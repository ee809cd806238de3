package session

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/context"
)

const (
	prefixSessionCacheKey = "cache:therapy_session"
	CollectionName        = "therapy_session"
)

type IMongoMapper interface {
	Insert(ctx context.Context, s *TherapySession) error
	// FindOne 按id查找, 不过滤归属, 归属判定交给守卫层
	FindOne(ctx context.Context, sessionId int64) (*TherapySession, error)
	Update(ctx context.Context, s *TherapySession) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Insert(ctx context.Context, s *TherapySession) error {
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, sessionId int64) (*TherapySession, error) {
	var s TherapySession
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{"session_id": sessionId})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MongoMapper) Update(ctx context.Context, s *TherapySession) error {
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{"session_id": s.SessionId},
		bson.M{"$set": bson.M{
			"status":            s.Status,
			"mood_after":        s.MoodAfter,
			"topics_discussed":  s.TopicsDiscussed,
			"progress_notes":    s.ProgressNotes,
			"homework_assigned": s.HomeworkAssigned,
			"session_rating":    s.SessionRating,
			"end_time":          s.EndTime,
		}})
	return err
}
