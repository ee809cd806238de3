package conversation

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// LogConversation 记录一轮对话
// @router /conversation/log [POST]
func LogConversation(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.LogConversationReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ConversationService.LogConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetConversation 查询一轮对话
// @router /conversation/get [GET]
func GetConversation(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetConversationReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ConversationService.GetConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetConversationCounter 查询对话总数
// @router /conversation/counter [GET]
func GetConversationCounter(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ConversationService.GetConversationCounter(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
