package cmd

type (
	// StartTherapySessionReq 开始一次疗愈会话
	StartTherapySessionReq struct {
		Topic      string `json:"topic"`
		MoodBefore int64  `json:"mood_before"`
		Modality   string `json:"modality"`
	}

	StartTherapySessionResp struct {
		Code      int    `json:"code"`
		Msg       string `json:"msg"`
		SessionId int64  `json:"session_id"`
	}

	// EndTherapySessionReq 结束会话, 只能由会话所有者对open状态的会话调用一次
	EndTherapySessionReq struct {
		SessionId        int64    `json:"session_id"`
		MoodAfter        int64    `json:"mood_after"`
		TopicsDiscussed  []string `json:"topics_discussed"`
		ProgressNotes    string   `json:"progress_notes"`
		HomeworkAssigned string   `json:"homework_assigned"`
		SessionRating    int64    `json:"session_rating"`
	}

	EndTherapySessionResp struct {
		Code  int    `json:"code"`
		Msg   string `json:"msg"`
		Ended bool   `json:"ended"`
	}

	GetTherapySessionReq struct {
		SessionId int64 `query:"session_id"`
	}

	GetTherapySessionResp struct {
		Code    int             `json:"code"`
		Msg     string          `json:"msg"`
		Found   bool            `json:"found"`
		Session *TherapySession `json:"session,omitempty"`
	}

	TherapySession struct {
		SessionId        int64    `json:"session_id"`
		Topic            string   `json:"topic"`
		Modality         string   `json:"modality"`
		Status           string   `json:"status"`
		MoodBefore       int64    `json:"mood_before"`
		MoodAfter        int64    `json:"mood_after"`
		TopicsDiscussed  []string `json:"topics_discussed"`
		ProgressNotes    string   `json:"progress_notes"`
		HomeworkAssigned string   `json:"homework_assigned"`
		SessionRating    int64    `json:"session_rating"`
		StartTime        int64    `json:"start_time"`
		EndTime          int64    `json:"end_time"`
	}
)
