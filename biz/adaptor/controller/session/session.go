package session

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// StartTherapySession 开始一次疗愈会话
// @router /session/start [POST]
func StartTherapySession(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.StartTherapySessionReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SessionService.StartTherapySession(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// EndTherapySession 结束会话
// @router /session/end [POST]
func EndTherapySession(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.EndTherapySessionReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SessionService.EndTherapySession(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetTherapySession 查询疗愈会话
// @router /session/get [GET]
func GetTherapySession(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetTherapySessionReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SessionService.GetTherapySession(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetSessionCounter 查询疗愈会话总数
// @router /session/counter [GET]
func GetSessionCounter(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.SessionService.GetSessionCounter(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
