package goal

import "time"

// WellnessGoal 健康目标, 进度只能通过更新操作修改
type WellnessGoal struct {
	Owner           string    `bson:"owner" json:"owner"`
	GoalId          int64     `bson:"goal_id" json:"goal_id"`
	Name            string    `bson:"name" json:"name"`
	TargetValue     int64     `bson:"target_value" json:"target_value"`
	TargetDate      int64     `bson:"target_date" json:"target_date"`
	Milestones      []int64   `bson:"milestones" json:"milestones"`
	CurrentProgress int64     `bson:"current_progress" json:"current_progress"`
	CreateTime      time.Time `bson:"create_time" json:"create_time"`
}
