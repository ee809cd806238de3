package goal

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// CreateWellnessGoal 创建健康目标
// @router /goal/create [POST]
func CreateWellnessGoal(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.CreateWellnessGoalReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.GoalService.CreateWellnessGoal(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateGoalProgress 更新目标进度
// @router /goal/progress [POST]
func UpdateGoalProgress(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.UpdateGoalProgressReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.GoalService.UpdateGoalProgress(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetWellnessGoal 查询健康目标
// @router /goal/get [GET]
func GetWellnessGoal(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetWellnessGoalReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.GoalService.GetWellnessGoal(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetGoalCounter 查询健康目标总数
// @router /goal/counter [GET]
func GetGoalCounter(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.GoalService.GetGoalCounter(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
