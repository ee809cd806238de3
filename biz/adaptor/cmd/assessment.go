package cmd

type (
	// ConductAssessmentReq 完成一次标准化量表测评
	ConductAssessmentReq struct {
		AssessmentType    string `json:"assessment_type"`
		QuestionsAnswered int64  `json:"questions_answered"`
		TotalQuestions    int64  `json:"total_questions"`
		RawScore          int64  `json:"raw_score"`
	}

	// ConductAssessmentResp 的 Result 是本次操作的观察值:
	// 高风险时为干预等级, 否则为新测评的id
	ConductAssessmentResp struct {
		Code              int    `json:"code"`
		Msg               string `json:"msg"`
		Result            int64  `json:"result"`
		AssessmentId      int64  `json:"assessment_id"`
		InterventionLevel int64  `json:"intervention_level"`
	}

	GetAssessmentReq struct {
		AssessmentId int64 `query:"assessment_id"`
	}

	GetAssessmentResp struct {
		Code       int         `json:"code"`
		Msg        string      `json:"msg"`
		Found      bool        `json:"found"`
		Assessment *Assessment `json:"assessment,omitempty"`
	}

	Assessment struct {
		AssessmentId      int64  `json:"assessment_id"`
		AssessmentType    string `json:"assessment_type"`
		QuestionsAnswered int64  `json:"questions_answered"`
		TotalQuestions    int64  `json:"total_questions"`
		RawScore          int64  `json:"raw_score"`
		InterventionLevel int64  `json:"intervention_level"`
		CreateTime        int64  `json:"create_time"`
	}
)
