package chat

import "strings"

// reply 是一轮对话的固定回复, 附带所用的疗法标记
type reply struct {
	technique string
	sentiment string
	content   string
}

// responses 按主题词选择回复, 命中顺序即优先级
var responses = []struct {
	keywords []string
	reply    reply
}{
	{
		keywords: []string{"anxious", "anxiety", "worry", "panic"},
		reply: reply{
			technique: "grounding",
			sentiment: "negative",
			content:   "That sounds overwhelming. Let's slow down together: name five things you can see around you right now.",
		},
	},
	{
		keywords: []string{"sad", "down", "hopeless", "empty"},
		reply: reply{
			technique: "cognitive-reframing",
			sentiment: "negative",
			content:   "Thank you for sharing that. When you say things feel this way, what thought comes up first? Let's look at it together.",
		},
	},
	{
		keywords: []string{"sleep", "tired", "insomnia"},
		reply: reply{
			technique: "behavioral-activation",
			sentiment: "neutral",
			content:   "Rest matters a lot. Could we walk through what your evenings look like before bed?",
		},
	},
	{
		keywords: []string{"thanks", "better", "good", "helpful"},
		reply: reply{
			technique: "affirmation",
			sentiment: "positive",
			content:   "I'm glad to hear that. Noticing improvement is itself progress worth holding on to.",
		},
	},
}

// fallback 未命中任何主题词时的通用回复
var fallback = reply{
	technique: "active-listening",
	sentiment: "neutral",
	content:   "I hear you. Could you tell me a bit more about what that has been like for you?",
}

// respond 根据用户输入选择回复
// 纯函数, 不看对话历史, 历史语境由会话记录承载
func respond(msg string) reply {
	lower := strings.ToLower(msg)
	for _, r := range responses {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	return fallback
}
