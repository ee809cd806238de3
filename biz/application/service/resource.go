package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/domain/access"
	"github.com/xh-polaris/psych-wellness/biz/domain/validate"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/counter"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/resource"
)

type IResourceService interface {
	AddTherapeuticResource(ctx context.Context, req *cmd.AddTherapeuticResourceReq) (*cmd.AddTherapeuticResourceResp, error)
	GetTherapeuticResource(ctx context.Context, req *cmd.GetTherapeuticResourceReq) (*cmd.GetTherapeuticResourceResp, error)
	GetResourceCounter(ctx context.Context) (*cmd.CounterResp, error)
}

type ResourceService struct {
	Config         *config.Config
	ResourceMapper resource.IMongoMapper
	CounterMapper  counter.IMongoMapper
}

var ResourceServiceSet = wire.NewSet(
	wire.Struct(new(ResourceService), "*"),
	wire.Bind(new(IResourceService), new(*ResourceService)),
)

// AddTherapeuticResource 上架疗愈资源, 仅管理员可写, 资源对所有用户可读
func (s *ResourceService) AddTherapeuticResource(ctx context.Context, req *cmd.AddTherapeuticResourceReq) (*cmd.AddTherapeuticResourceResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !access.IsAdmin(uid, s.Config.Auth.AdminId) {
		return nil, consts.ErrNotAuthorized
	}
	if err = validate.TherapeuticResource(req); err != nil {
		return nil, err
	}

	id, err := s.CounterMapper.Alloc(ctx, consts.CounterResource)
	if err != nil {
		return nil, err
	}
	err = s.ResourceMapper.Insert(ctx, &resource.TherapeuticResource{
		Category:            req.Category,
		ResourceId:          id,
		Name:                req.Name,
		Description:         req.Description,
		Tag:                 req.Tag,
		EffectivenessRating: req.EffectivenessRating,
		Difficulty:          req.Difficulty,
		AppliesTo:           req.AppliesTo,
		CreateTime:          time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &cmd.AddTherapeuticResourceResp{Code: 0, Msg: "success", ResourceId: id}, nil
}

// GetTherapeuticResource 资源库是公共读, 不做属主过滤
func (s *ResourceService) GetTherapeuticResource(ctx context.Context, req *cmd.GetTherapeuticResourceReq) (*cmd.GetTherapeuticResourceResp, error) {
	if _, err := identity.FromContext(ctx); err != nil {
		return nil, err
	}

	r, err := s.ResourceMapper.FindOne(ctx, req.Category, req.ResourceId)
	if err != nil {
		return &cmd.GetTherapeuticResourceResp{Code: 0, Msg: "success", Found: false}, nil
	}

	tr := &cmd.TherapeuticResource{}
	if err = copier.Copy(tr, r); err != nil {
		return nil, err
	}
	tr.CreateTime = r.CreateTime.Unix()
	return &cmd.GetTherapeuticResourceResp{Code: 0, Msg: "success", Found: true, Resource: tr}, nil
}

func (s *ResourceService) GetResourceCounter(ctx context.Context) (*cmd.CounterResp, error) {
	if _, err := identity.FromContext(ctx); err != nil {
		return nil, err
	}
	count, err := s.CounterMapper.Count(ctx, consts.CounterResource)
	if err != nil {
		return nil, err
	}
	return &cmd.CounterResp{Code: 0, Msg: "success", Count: count}, nil
}
