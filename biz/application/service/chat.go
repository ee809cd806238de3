package service

import (
	"context"

	"github.com/google/wire"
	"github.com/hertz-contrib/websocket"
	"github.com/xh-polaris/psych-wellness/biz/domain/chat"
)

type IChatService interface {
	Handle(ctx context.Context, conn *websocket.Conn)
}

// ChatService 处理长对话, 每个连接一个engine
type ChatService struct {
	Conversations IConversationService
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// Handle 处理一条长对话连接 TODO: 需要加上超时处理, 避免连接空置太长时间
func (s *ChatService) Handle(ctx context.Context, conn *websocket.Conn) {
	engine := chat.NewEngine(ctx, conn, s.Conversations)
	defer func() { engine.Close() }()

	if err := engine.Start(); err != nil {
		return
	}
	engine.Chat()
}
