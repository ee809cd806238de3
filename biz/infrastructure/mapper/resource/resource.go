package resource

import "time"

// TherapeuticResource 疗愈资源, 按(category, resource_id)检索, 全体用户可读
type TherapeuticResource struct {
	Category            string    `bson:"category" json:"category"`
	ResourceId          int64     `bson:"resource_id" json:"resource_id"`
	Name                string    `bson:"name" json:"name"`
	Description         string    `bson:"description" json:"description"`
	Tag                 string    `bson:"tag" json:"tag"`
	EffectivenessRating int64     `bson:"effectiveness_rating" json:"effectiveness_rating"`
	Difficulty          string    `bson:"difficulty" json:"difficulty"`
	AppliesTo           []string  `bson:"applies_to" json:"applies_to"`
	CreateTime          time.Time `bson:"create_time" json:"create_time"`
}
