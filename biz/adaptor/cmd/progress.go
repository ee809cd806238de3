package cmd

type (
	UpdateProgressResp struct {
		Code    int    `json:"code"`
		Msg     string `json:"msg"`
		Updated bool   `json:"updated"`
	}

	// LearnCopingStrategyReq 记录一项已掌握的应对策略, 重复学习不重复计数
	LearnCopingStrategyReq struct {
		Strategy string `json:"strategy"`
	}

	LearnCopingStrategyResp struct {
		Code    int    `json:"code"`
		Msg     string `json:"msg"`
		Learned bool   `json:"learned"`
	}

	GetProgressResp struct {
		Code     int               `json:"code"`
		Msg      string            `json:"msg"`
		Found    bool              `json:"found"`
		Progress *ProgressTracking `json:"progress,omitempty"`
	}

	ProgressTracking struct {
		SessionsCompleted int64    `json:"sessions_completed"`
		CopingStrategies  []string `json:"coping_strategies"`
		CurrentStreak     int64    `json:"current_streak"`
		LastSession       int64    `json:"last_session"`
	}

	GetSessionStatisticsResp struct {
		Code       int                `json:"code"`
		Msg        string             `json:"msg"`
		Found      bool               `json:"found"`
		Statistics *SessionStatistics `json:"statistics,omitempty"`
	}

	// SessionStatistics 是进度记录的派生统计视图
	SessionStatistics struct {
		TotalSessions     int64 `json:"total_sessions"`
		StrategiesLearned int64 `json:"strategies_learned"`
		CurrentStreak     int64 `json:"current_streak"`
		LastSession       int64 `json:"last_session"`
	}
)
