package validate

import (
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

// 入参校验: 每个实体族一个纯函数, 落库前先过这里
// 任何一条约束不满足都返回同一个 ErrInvalidInput, 不存在可观察的检查顺序

// 字段上限
const (
	maxScore    = 10
	maxProgress = 100
	maxRating   = 5
	minRating   = 1

	maxTextLen  = 500
	maxNameLen  = 100
	maxListLen  = 10
	maxItemLen  = 100
)

// score 闭区间[0,10]
func score(v int64) bool { return v >= 0 && v <= maxScore }

// text 有界长文本
func text(v string) bool { return len(v) <= maxTextLen }

// name 有界短文本
func name(v string) bool { return len(v) <= maxNameLen }

// list 有界列表, 元素也有界
func list(v []string) bool {
	if len(v) > maxListLen {
		return false
	}
	for _, item := range v {
		if len(item) > maxItemLen {
			return false
		}
	}
	return true
}

// MoodEntry 七项评分都必须在[0,10]内, 文本与列表有界
func MoodEntry(req *cmd.LogMoodEntryReq) error {
	scores := []int64{
		req.MoodScore, req.EnergyLevel, req.StressLevel, req.AnxietyLevel,
		req.SleepQuality, req.SocialInteraction, req.PhysicalActivity,
	}
	for _, s := range scores {
		if !score(s) {
			return consts.ErrInvalidInput
		}
	}
	if !text(req.Notes) || !list(req.Triggers) || !list(req.Activities) || !list(req.Medications) {
		return consts.ErrInvalidInput
	}
	return nil
}

// WellnessGoal 创建健康目标
func WellnessGoal(req *cmd.CreateWellnessGoalReq) error {
	if !name(req.Name) || req.Name == "" {
		return consts.ErrInvalidInput
	}
	if req.TargetValue < 0 || req.TargetDate < 0 {
		return consts.ErrInvalidInput
	}
	if len(req.Milestones) > maxListLen {
		return consts.ErrInvalidInput
	}
	return nil
}

// GoalProgress 进度是[0,100]的百分比
func GoalProgress(progress int64) error {
	if progress < 0 || progress > maxProgress {
		return consts.ErrInvalidInput
	}
	return nil
}

// CrisisPlan 更新危机支持计划
func CrisisPlan(req *cmd.UpdateCrisisPlanReq) error {
	if !text(req.PlanText) {
		return consts.ErrInvalidInput
	}
	if !list(req.EmergencyContacts) || !list(req.Hotlines) || !list(req.SupportNetwork) {
		return consts.ErrInvalidInput
	}
	return nil
}

// TherapySessionStart 开始疗愈会话
func TherapySessionStart(req *cmd.StartTherapySessionReq) error {
	if !name(req.Topic) || req.Topic == "" || !name(req.Modality) {
		return consts.ErrInvalidInput
	}
	if !score(req.MoodBefore) {
		return consts.ErrInvalidInput
	}
	return nil
}

// TherapySessionEnd 结束疗愈会话, 只校验本次变更的字段
func TherapySessionEnd(req *cmd.EndTherapySessionReq) error {
	if !score(req.MoodAfter) {
		return consts.ErrInvalidInput
	}
	if req.SessionRating < minRating || req.SessionRating > maxRating {
		return consts.ErrInvalidInput
	}
	if !list(req.TopicsDiscussed) || !text(req.ProgressNotes) || !text(req.HomeworkAssigned) {
		return consts.ErrInvalidInput
	}
	return nil
}

// Conversation 记录对话
func Conversation(req *cmd.LogConversationReq) error {
	if !text(req.UserInput) || !text(req.BotResponse) {
		return consts.ErrInvalidInput
	}
	if !name(req.ConversationContext) || !name(req.TherapeuticTechnique) || !name(req.SentimentAnalysis) {
		return consts.ErrInvalidInput
	}
	return nil
}

// Assessment 量表测评, 答题数不能超过总题数
func Assessment(req *cmd.ConductAssessmentReq) error {
	if !name(req.AssessmentType) || req.AssessmentType == "" {
		return consts.ErrInvalidInput
	}
	if req.QuestionsAnswered < 1 || req.TotalQuestions < 1 {
		return consts.ErrInvalidInput
	}
	if req.QuestionsAnswered > req.TotalQuestions {
		return consts.ErrInvalidInput
	}
	if req.RawScore < 0 {
		return consts.ErrInvalidInput
	}
	return nil
}

// CopingStrategy 应对策略名
func CopingStrategy(strategy string) error {
	if strategy == "" || !name(strategy) {
		return consts.ErrInvalidInput
	}
	return nil
}

// CrisisTrigger 手动触发危机干预
func CrisisTrigger(req *cmd.TriggerCrisisInterventionReq) error {
	if !name(req.TriggerReason) || req.TriggerReason == "" {
		return consts.ErrInvalidInput
	}
	return nil
}

// TherapeuticResource 添加疗愈资源
func TherapeuticResource(req *cmd.AddTherapeuticResourceReq) error {
	if !name(req.Category) || req.Category == "" || !name(req.Name) || req.Name == "" {
		return consts.ErrInvalidInput
	}
	if !text(req.Description) || !name(req.Tag) || !name(req.Difficulty) {
		return consts.ErrInvalidInput
	}
	if !score(req.EffectivenessRating) {
		return consts.ErrInvalidInput
	}
	if !list(req.AppliesTo) {
		return consts.ErrInvalidInput
	}
	return nil
}

// AnonymousContribution 匿名数据贡献
func AnonymousContribution(req *cmd.ContributeAnonymousDataReq) error {
	if !score(req.Score) {
		return consts.ErrInvalidInput
	}
	if req.Period == "" || !name(req.Period) {
		return consts.ErrInvalidInput
	}
	return nil
}
