package session

import "time"

// TherapySession 疗愈会话, 结束是单向状态转换
type TherapySession struct {
	Owner            string    `bson:"owner" json:"owner"`
	SessionId        int64     `bson:"session_id" json:"session_id"`
	Topic            string    `bson:"topic" json:"topic"`
	Modality         string    `bson:"modality" json:"modality"`
	Status           string    `bson:"status" json:"status"`
	MoodBefore       int64     `bson:"mood_before" json:"mood_before"`
	MoodAfter        int64     `bson:"mood_after" json:"mood_after"`
	TopicsDiscussed  []string  `bson:"topics_discussed" json:"topics_discussed"`
	ProgressNotes    string    `bson:"progress_notes" json:"progress_notes"`
	HomeworkAssigned string    `bson:"homework_assigned" json:"homework_assigned"`
	SessionRating    int64     `bson:"session_rating" json:"session_rating"`
	StartTime        time.Time `bson:"start_time" json:"start_time"`
	EndTime          time.Time `bson:"end_time" json:"end_time"`
}
