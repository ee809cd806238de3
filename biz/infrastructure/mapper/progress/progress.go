package progress

import "time"

// ProgressTracking 每个用户一条, 首次更新时惰性创建
type ProgressTracking struct {
	Owner             string    `bson:"_id" json:"owner"`
	SessionsCompleted int64     `bson:"sessions_completed" json:"sessions_completed"`
	CopingStrategies  []string  `bson:"coping_strategies" json:"coping_strategies"`
	CurrentStreak     int64     `bson:"current_streak" json:"current_streak"`
	LastSession       time.Time `bson:"last_session" json:"last_session"`
}
