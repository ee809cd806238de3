package anonstat

// AnonymousStat 按统计周期聚合, 不落任何个体标识
type AnonymousStat struct {
	Period       string `bson:"_id" json:"period"`
	Contributors int64  `bson:"contributors" json:"contributors"`
	TotalScore   int64  `bson:"total_score" json:"total_score"`
}
