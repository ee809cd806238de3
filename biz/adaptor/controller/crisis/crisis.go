package crisis

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// UpdateCrisisPlan 更新危机支持计划
// @router /crisis/plan/update [POST]
func UpdateCrisisPlan(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.UpdateCrisisPlanReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CrisisService.UpdateCrisisPlan(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateRiskLevel 更新风险等级
// @router /crisis/risk/update [POST]
func UpdateRiskLevel(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.UpdateRiskLevelReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CrisisService.UpdateRiskLevel(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetCrisisPlan 查询自己的危机支持计划
// @router /crisis/plan/get [GET]
func GetCrisisPlan(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.CrisisService.GetCrisisPlan(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// TriggerCrisisIntervention 手动触发危机干预
// @router /crisis/trigger [POST]
func TriggerCrisisIntervention(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.TriggerCrisisInterventionReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CrisisService.TriggerCrisisIntervention(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetCrisisIntervention 查询自己某一等级的干预记录
// @router /crisis/get [GET]
func GetCrisisIntervention(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetCrisisInterventionReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CrisisService.GetCrisisIntervention(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
