package stats

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// ContributeAnonymousData 匿名贡献一条心情得分
// @router /stats/contribute [POST]
func ContributeAnonymousData(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.ContributeAnonymousDataReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.StatsService.ContributeAnonymousData(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAnonymousStats 查询某周期的匿名聚合
// @router /stats/get [GET]
func GetAnonymousStats(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetAnonymousStatsReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.StatsService.GetAnonymousStats(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
