package resource

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-wellness/biz/adaptor"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/provider"
)

// AddTherapeuticResource 上架疗愈资源, 仅管理员可用
// @router /resource/add [POST]
func AddTherapeuticResource(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.AddTherapeuticResourceReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ResourceService.AddTherapeuticResource(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetTherapeuticResource 查询疗愈资源
// @router /resource/get [GET]
func GetTherapeuticResource(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetTherapeuticResourceReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ResourceService.GetTherapeuticResource(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetResourceCounter 查询资源总数
// @router /resource/counter [GET]
func GetResourceCounter(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ResourceService.GetResourceCounter(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
