package dto

type (
	// ChatStartReq 开始长对话请求, 指定挂靠的疗愈会话
	ChatStartReq struct {
		// 疗愈会话id
		SessionId int64 `json:"session_id"`
		// 开始的时间戳
		Timestamp int64 `json:"timestamp"`
		// 使用者标记
		From string `json:"from"`
	}

	// ChatReq 对话请求
	ChatReq struct {
		// 命令, 0对话, -1结束, 1心跳
		Cmd int64  `json:"cmd"`
		Msg string `json:"msg"`
	}

	// ChatEndResp 对话结束响应
	ChatEndResp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}

	// ChatData 一轮对话的响应
	ChatData struct {
		ConversationId    int64  `json:"conversation_id"`
		Content           string `json:"content"`
		SessionId         int64  `json:"session_id"`
		InterventionLevel int64  `json:"intervention_level"`
		Timestamp         int64  `json:"timestamp"`
	}

	// ChatHistory 对话记录
	ChatHistory struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
)
