package cmd

type (
	// LogConversationReq 记录一轮对话
	LogConversationReq struct {
		SessionId            int64  `json:"session_id"`
		UserInput            string `json:"user_input"`
		BotResponse          string `json:"bot_response"`
		ConversationContext  string `json:"conversation_context"`
		TherapeuticTechnique string `json:"therapeutic_technique"`
		SentimentAnalysis    string `json:"sentiment_analysis"`
	}

	// LogConversationResp 的 Result 是本次操作的观察值:
	// 命中危机路径时为干预等级, 否则为新对话的id
	LogConversationResp struct {
		Code              int    `json:"code"`
		Msg               string `json:"msg"`
		Result            int64  `json:"result"`
		ConversationId    int64  `json:"conversation_id"`
		InterventionLevel int64  `json:"intervention_level"`
	}

	GetConversationReq struct {
		SessionId      int64 `query:"session_id"`
		ConversationId int64 `query:"conversation_id"`
	}

	GetConversationResp struct {
		Code         int           `json:"code"`
		Msg          string        `json:"msg"`
		Found        bool          `json:"found"`
		Conversation *Conversation `json:"conversation,omitempty"`
	}

	Conversation struct {
		SessionId            int64  `json:"session_id"`
		ConversationId       int64  `json:"conversation_id"`
		UserInput            string `json:"user_input"`
		BotResponse          string `json:"bot_response"`
		ConversationContext  string `json:"conversation_context"`
		TherapeuticTechnique string `json:"therapeutic_technique"`
		SentimentAnalysis    string `json:"sentiment_analysis"`
		InterventionLevel    int64  `json:"intervention_level"`
		CreateTime           int64  `json:"create_time"`
	}
)
