package conversation

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/context"
)

const (
	prefixConversationCacheKey = "cache:conversation"
	CollectionName             = "conversation"
)

type IMongoMapper interface {
	Insert(ctx context.Context, c *Conversation) error
	FindOne(ctx context.Context, sessionId, conversationId int64) (*Conversation, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Insert(ctx context.Context, c *Conversation) error {
	_, err := m.conn.InsertOneNoCache(ctx, c)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, sessionId, conversationId int64) (*Conversation, error) {
	var c Conversation
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		"session_id":      sessionId,
		"conversation_id": conversationId,
	})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
