package intervention

import "time"

// CrisisIntervention 以(owner, level)为键, 同级重复触发覆盖而不累积
type CrisisIntervention struct {
	Owner         string    `bson:"owner" json:"owner"`
	Level         int64     `bson:"level" json:"level"`
	TriggerReason string    `bson:"trigger_reason" json:"trigger_reason"`
	RiskLabel     string    `bson:"risk_label" json:"risk_label"`
	CreateTime    time.Time `bson:"create_time" json:"create_time"`
}
