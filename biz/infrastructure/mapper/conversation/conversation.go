package conversation

import "time"

// Conversation 一轮对话记录, 挂在疗愈会话下
type Conversation struct {
	Owner                string    `bson:"owner" json:"owner"`
	SessionId            int64     `bson:"session_id" json:"session_id"`
	ConversationId       int64     `bson:"conversation_id" json:"conversation_id"`
	UserInput            string    `bson:"user_input" json:"user_input"`
	BotResponse          string    `bson:"bot_response" json:"bot_response"`
	ConversationContext  string    `bson:"conversation_context" json:"conversation_context"`
	TherapeuticTechnique string    `bson:"therapeutic_technique" json:"therapeutic_technique"`
	SentimentAnalysis    string    `bson:"sentiment_analysis" json:"sentiment_analysis"`
	InterventionLevel    int64     `bson:"intervention_level" json:"intervention_level"`
	CreateTime           time.Time `bson:"create_time" json:"create_time"`
}
