package risk

import (
	"strings"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

// 风险评估引擎: 把量表得分、对话文本和风险标签映射到干预等级
// 所有映射都是固定查表, 进程启动时构造一次, 不做任何语义推断

// Level 危机干预等级
type Level int64

const (
	LevelNone   Level = 0
	LevelLow    Level = 1
	LevelMedium Level = 2
	LevelHigh   Level = 3
)

// scaleMax 量表归一化基准
// 所有量表统一按27分制(PHQ-9总分)归一, 而不是按各自量表的满分:
// 这样 PHQ-9 raw=25 会被定为高风险, 而 GAD-7 raw=20 不会
const scaleMax = 27

// 归一化百分比阈值
const (
	highThreshold   = 80
	mediumThreshold = 60
	lowThreshold    = 40
)

// crisisKeywords 危机关键词表, 大小写敏感的子串匹配
var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"self-harm",
	"hurt myself",
	"no reason to live",
}

// riskLabels 风险标签映射表
var riskLabels = map[string]Level{
	consts.RiskLow:    LevelLow,
	consts.RiskMedium: LevelMedium,
	consts.RiskHigh:   LevelHigh,
}

// FromAssessment 根据量表原始分计算干预等级
func FromAssessment(rawScore int64) Level {
	if rawScore < 0 {
		return LevelNone
	}
	normalized := rawScore * 100 / scaleMax
	switch {
	case normalized >= highThreshold:
		return LevelHigh
	case normalized >= mediumThreshold:
		return LevelMedium
	case normalized >= lowThreshold:
		return LevelLow
	default:
		return LevelNone
	}
}

// FromText 扫描对话文本中的危机关键词
// 只做子串匹配, 不做语义分析, 命中即为高风险
func FromText(text string) Level {
	for _, kw := range crisisKeywords {
		if strings.Contains(text, kw) {
			return LevelHigh
		}
	}
	return LevelNone
}

// FromLabel 将风险标签映射为干预等级, 未知标签属于调用方入参错误
func FromLabel(label string) (Level, error) {
	level, ok := riskLabels[label]
	if !ok {
		return LevelNone, consts.ErrInvalidInput
	}
	return level, nil
}
