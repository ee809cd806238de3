package progress

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// UpdateProgress 完成一次会谈后累计进度
// @router /progress/update [POST]
func UpdateProgress(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ProgressService.UpdateProgress(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// LearnCopingStrategy 记录一项已掌握的应对策略
// @router /progress/strategy [POST]
func LearnCopingStrategy(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.LearnCopingStrategyReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ProgressService.LearnCopingStrategy(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetProgress 查询自己的进度记录
// @router /progress/get [GET]
func GetProgress(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ProgressService.GetProgress(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// GetSessionStatistics 查询自己的会谈统计
// @router /progress/statistics [GET]
func GetSessionStatistics(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ProgressService.GetSessionStatistics(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
