package cmd

type (
	// CreateWellnessGoalReq 创建健康目标
	CreateWellnessGoalReq struct {
		Name        string  `json:"name"`
		TargetValue int64   `json:"target_value"`
		TargetDate  int64   `json:"target_date"`
		Milestones  []int64 `json:"milestones"`
	}

	CreateWellnessGoalResp struct {
		Code   int    `json:"code"`
		Msg    string `json:"msg"`
		GoalId int64  `json:"goal_id"`
	}

	// UpdateGoalProgressReq 更新目标进度, 进度为[0,100]的百分比
	UpdateGoalProgressReq struct {
		GoalId   int64 `json:"goal_id"`
		Progress int64 `json:"progress"`
	}

	UpdateGoalProgressResp struct {
		Code     int    `json:"code"`
		Msg      string `json:"msg"`
		Progress int64  `json:"progress"`
	}

	GetWellnessGoalReq struct {
		GoalId int64 `query:"goal_id"`
	}

	GetWellnessGoalResp struct {
		Code  int           `json:"code"`
		Msg   string        `json:"msg"`
		Found bool          `json:"found"`
		Goal  *WellnessGoal `json:"goal,omitempty"`
	}

	WellnessGoal struct {
		GoalId          int64   `json:"goal_id"`
		Name            string  `json:"name"`
		TargetValue     int64   `json:"target_value"`
		TargetDate      int64   `json:"target_date"`
		Milestones      []int64 `json:"milestones"`
		CurrentProgress int64   `json:"current_progress"`
		CreateTime      int64   `json:"create_time"`
	}
)
