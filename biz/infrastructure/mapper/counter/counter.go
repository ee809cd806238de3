package counter

// Counter 每个实体族一条, Seq是该族已成功创建的记录数
type Counter struct {
	Family string `bson:"_id" json:"family"`
	Seq    int64  `bson:"seq" json:"seq"`
}
