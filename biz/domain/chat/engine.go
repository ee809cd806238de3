package chat

import (
	"context"
	"time"

	"github.com/hertz-contrib/websocket"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/application/dto"
	"github.com/xh-polaris/psych-wellness/biz/domain"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

// Recorder 是对话落库的入口, 危机判定与升级都发生在落库内部
type Recorder interface {
	LogConversation(ctx context.Context, req *cmd.LogConversationReq) (*cmd.LogConversationResp, error)
}

// Engine 是处理一轮长对话的核心对象
// 每轮用户输入都作为一条对话记录落库, 危机判定走落库同一路径
type Engine struct {
	// ctx 上下文, 携带调用方身份
	ctx context.Context

	// cancel 取消goroutine的广播函数
	cancel context.CancelFunc

	// ws 提供WebSocket的读写功能
	ws *domain.WsHelper

	// rs 保存进行中对话的滚动转写
	rs *domain.RedisHelper

	// conversations 落库与危机升级的唯一入口
	conversations Recorder

	// sessionId 本次长对话挂靠的疗愈会话
	sessionId int64

	// startTime 开始对话时间
	startTime time.Time

	// round 对话轮数
	round int
}

// NewEngine 初始化一个ChatEngine
func NewEngine(ctx context.Context, conn *websocket.Conn, conversations Recorder) *Engine {
	ctx, cancel := context.WithCancel(ctx)
	return &Engine{
		ctx:           ctx,
		cancel:        cancel,
		ws:            domain.NewWsHelper(conn),
		rs:            domain.GetRedisHelper(),
		conversations: conversations,
		startTime:     time.Now(),
	}
}

// Start 开始一轮长对话, 读取开始请求并绑定疗愈会话
// 会话不存在或不属于调用方时, 第一轮落库就会失败, 这里不预检
func (e *Engine) Start() error {
	var startReq dto.ChatStartReq
	if err := e.ws.ReadJSON(&startReq); err != nil {
		log.CtxError(e.ctx, "read start req err: %s", err.Error())
		_ = e.ws.Error(consts.ErrInvalidInput)
		return err
	}
	e.sessionId = startReq.SessionId
	log.CtxInfo(e.ctx, "调用方: %s, 调用时间: %s", startReq.From, time.Unix(startReq.Timestamp, 0).String())

	greeting := "Hello, I'm here with you. How are you feeling today?"
	if err := e.rs.AddBot(e.sessionId, greeting); err != nil {
		return err
	}
	return e.ws.WriteJSON(&dto.ChatData{
		Content:   greeting,
		SessionId: e.sessionId,
		Timestamp: time.Now().Unix(),
	})
}

// Chat 长对话的主体部分
func (e *Engine) Chat() {
	var req dto.ChatReq
	var err error
	defer func() {
		if err != nil {
			log.CtxError(e.ctx, "chat err: %s", err.Error())
		}
	}()

	for {
		// 获取前端对话内容
		if err = e.ws.ReadJSON(&req); err != nil {
			return
		}
		// 判断是否结束
		switch req.Cmd {
		case consts.EndCmd:
			return
		case consts.Ping:
			if err = e.ws.WriteBytes([]byte{}); err != nil {
				return
			}
			continue
		}

		e.round++
		if err = e.turn(req.Msg); err != nil {
			return
		}
	}
}

// turn 处理一轮对话: 选择回复, 落库, 更新转写, 回写前端
func (e *Engine) turn(msg string) error {
	r := respond(msg)

	resp, err := e.conversations.LogConversation(e.ctx, &cmd.LogConversationReq{
		SessionId:            e.sessionId,
		UserInput:            msg,
		BotResponse:          r.content,
		TherapeuticTechnique: r.technique,
		SentimentAnalysis:    r.sentiment,
	})
	if err != nil {
		_ = e.ws.Error(consts.ErrNotFound)
		return err
	}

	if err = e.rs.AddUser(e.sessionId, msg); err != nil {
		log.CtxError(e.ctx, "user transcript err: %s", err.Error())
	}
	if err = e.rs.AddBot(e.sessionId, r.content); err != nil {
		log.CtxError(e.ctx, "bot transcript err: %s", err.Error())
	}

	return e.ws.WriteJSON(&dto.ChatData{
		ConversationId:    resp.ConversationId,
		Content:           r.content,
		SessionId:         e.sessionId,
		InterventionLevel: resp.InterventionLevel,
		Timestamp:         time.Now().Unix(),
	})
}

// Close 结束本次长对话
func (e *Engine) Close() {
	err := e.ws.WriteJSON(&dto.ChatEndResp{
		Code: 0,
		Msg:  "对话结束",
	})
	if err != nil {
		log.CtxError(e.ctx, "%s", err.Error())
	}
	e.cancel()
	// 转写只服务于进行中的对话, 结束即清除, 落库记录才是事实来源
	if err = e.rs.Remove(e.sessionId); err != nil {
		log.CtxError(e.ctx, "remove transcript err: %s", err.Error())
	}
	if err = e.ws.Close(); err != nil {
		log.CtxError(e.ctx, "close ws err: %s", err.Error())
	}
}
