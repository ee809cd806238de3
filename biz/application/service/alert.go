package service

import "context"

// AlertNotifier 危机预警通知, 生产实现是RabbitMQ生产者
// 预警是旁路动作, 失败只记录日志, 不影响触发它的操作
type AlertNotifier interface {
	Produce(ctx context.Context, level int64, reason string) error
}
