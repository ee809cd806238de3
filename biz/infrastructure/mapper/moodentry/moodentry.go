package moodentry

import "time"

// MoodEntry 心情日志, 归属在创建时写入且不再变化
type MoodEntry struct {
	Owner             string    `bson:"owner" json:"owner"`
	EntryId           int64     `bson:"entry_id" json:"entry_id"`
	MoodScore         int64     `bson:"mood_score" json:"mood_score"`
	EnergyLevel       int64     `bson:"energy_level" json:"energy_level"`
	StressLevel       int64     `bson:"stress_level" json:"stress_level"`
	AnxietyLevel      int64     `bson:"anxiety_level" json:"anxiety_level"`
	SleepQuality      int64     `bson:"sleep_quality" json:"sleep_quality"`
	SocialInteraction int64     `bson:"social_interaction" json:"social_interaction"`
	PhysicalActivity  int64     `bson:"physical_activity" json:"physical_activity"`
	Notes             string    `bson:"notes" json:"notes"`
	Triggers          []string  `bson:"triggers" json:"triggers"`
	Activities        []string  `bson:"activities" json:"activities"`
	Medications       []string  `bson:"medications" json:"medications"`
	CreateTime        time.Time `bson:"create_time" json:"create_time"`
}
