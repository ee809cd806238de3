package chat

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/provider"
)

// LongChat 开启一轮长对话
// @router /chat/ [GET]
func LongChat(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	err := adaptor.UpgradeWs(ctx, c, p.ChatService.Handle)
	if err != nil {
		log.Error(err.Error())
	}
}
