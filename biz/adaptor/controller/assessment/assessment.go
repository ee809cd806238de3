package assessment

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// ConductAssessment 完成一次标准化量表测评
// @router /assessment/conduct [POST]
func ConductAssessment(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.ConductAssessmentReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssessmentService.ConductAssessment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAssessment 查询测评记录
// @router /assessment/get [GET]
func GetAssessment(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetAssessmentReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssessmentService.GetAssessment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAssessmentCounter 查询测评总数
// @router /assessment/counter [GET]
func GetAssessmentCounter(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.AssessmentService.GetAssessmentCounter(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
