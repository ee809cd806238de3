package consts

// 数据库相关
const (
	CreateTime = "create_time"

	// 各实体族的计数器名, 同时也是 counter 集合的主键
	CounterMoodEntry    = "mood_entry"
	CounterGoal         = "wellness_goal"
	CounterSession      = "therapy_session"
	CounterConversation = "conversation"
	CounterAssessment   = "assessment"
	CounterResource     = "therapeutic_resource"
)

// 会话状态
const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

// 风险标签
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// 默认值
const (
	EndCmd = -1
	Ping   = 1
)
