package crisisplan

import "time"

// CrisisSupportPlan 危机支持计划, 每个用户至多一份
type CrisisSupportPlan struct {
	Owner             string    `bson:"_id" json:"owner"`
	EmergencyContacts []string  `bson:"emergency_contacts" json:"emergency_contacts"`
	Hotlines          []string  `bson:"hotlines" json:"hotlines"`
	PlanText          string    `bson:"plan_text" json:"plan_text"`
	SupportNetwork    []string  `bson:"support_network" json:"support_network"`
	RiskLevel         string    `bson:"risk_level" json:"risk_level"`
	UpdateTime        time.Time `bson:"update_time" json:"update_time"`
}
