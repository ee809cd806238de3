package domain

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/xh-polaris/psych-wellness/biz/application/dto"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	rs "github.com/xh-polaris/psych-wellness/biz/infrastructure/redis"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var (
	instance *RedisHelper
	once     sync.Once
)

// RedisHelper 保存进行中长对话的滚动转写, 会话结束后清除
type RedisHelper struct {
	rs *redis.Redis
}

func GetRedisHelper() *RedisHelper {
	c := config.GetConfig()
	once.Do(func() {
		instance = &RedisHelper{
			rs: rs.NewRedis(c),
		}
	})
	return instance
}

// AddBot 添加bot回复记录
func (r *RedisHelper) AddBot(sessionId int64, msg string) error {
	return r.add(sessionId, "bot", msg)
}

// AddUser 添加用户输入记录
func (r *RedisHelper) AddUser(sessionId int64, msg string) error {
	return r.add(sessionId, "user", msg)
}

// add 将对话记录添加到队列尾部
func (r *RedisHelper) add(sessionId int64, role, msg string) error {
	history := dto.ChatHistory{
		Role:    role,
		Content: msg,
	}

	data, err := json.Marshal(history)
	if err != nil {
		return err
	}

	_, err = r.rs.Rpush(key(sessionId), string(data))
	return err
}

// Load 获取session对应的所有对话记录
func (r *RedisHelper) Load(sessionId int64) ([]*dto.ChatHistory, error) {
	data, err := r.rs.Lrange(key(sessionId), 0, -1)
	if err != nil {
		return nil, err
	}

	var history []*dto.ChatHistory
	for _, v := range data {
		var his dto.ChatHistory
		if err = json.Unmarshal([]byte(v), &his); err != nil {
			return nil, err
		}
		history = append(history, &his)
	}
	return history, nil
}

// Remove 删除session对应的记录
func (r *RedisHelper) Remove(sessionId int64) error {
	_, err := r.rs.Del(key(sessionId))
	return err
}

func key(sessionId int64) string {
	return "chat:transcript:" + strconv.FormatInt(sessionId, 10)
}
