package mood

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// LogMoodEntry 记录一条心情日志
// @router /mood/log [POST]
func LogMoodEntry(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.LogMoodEntryReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.MoodService.LogMoodEntry(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetMoodEntry 查询一条心情日志
// @router /mood/get [GET]
func GetMoodEntry(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetMoodEntryReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.MoodService.GetMoodEntry(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetEntryCounter 查询心情日志总数
// @router /mood/counter [GET]
func GetEntryCounter(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.MoodService.GetEntryCounter(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
