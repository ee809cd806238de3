package assessment

import "time"

// Assessment 标准化量表测评记录
type Assessment struct {
	Owner             string    `bson:"owner" json:"owner"`
	AssessmentId      int64     `bson:"assessment_id" json:"assessment_id"`
	AssessmentType    string    `bson:"assessment_type" json:"assessment_type"`
	QuestionsAnswered int64     `bson:"questions_answered" json:"questions_answered"`
	TotalQuestions    int64     `bson:"total_questions" json:"total_questions"`
	RawScore          int64     `bson:"raw_score" json:"raw_score"`
	InterventionLevel int64     `bson:"intervention_level" json:"intervention_level"`
	CreateTime        time.Time `bson:"create_time" json:"create_time"`
}
