package moodentry

import (
	"errors"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/context"
)

const (
	prefixMoodEntryCacheKey = "cache:mood_entry"
	CollectionName          = "mood_entry"
)

type IMongoMapper interface {
	Insert(ctx context.Context, entry *MoodEntry) error
	FindOne(ctx context.Context, entryId int64) (*MoodEntry, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) Insert(ctx context.Context, entry *MoodEntry) error {
	_, err := m.conn.InsertOneNoCache(ctx, entry)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, entryId int64) (*MoodEntry, error) {
	var entry MoodEntry
	err := m.conn.FindOneNoCache(ctx, &entry, bson.M{"entry_id": entryId})
	if errors.Is(err, monc.ErrNotFound) {
		return nil, consts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
