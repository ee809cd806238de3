package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/domain/risk"
	"github.com/xh-polaris/psych-wellness/biz/domain/validate"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/crisisplan"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/intervention"
)

type ICrisisService interface {
	UpdateCrisisPlan(ctx context.Context, req *cmd.UpdateCrisisPlanReq) (*cmd.UpdateCrisisPlanResp, error)
	UpdateRiskLevel(ctx context.Context, req *cmd.UpdateRiskLevelReq) (*cmd.UpdateRiskLevelResp, error)
	GetCrisisPlan(ctx context.Context) (*cmd.GetCrisisPlanResp, error)
	TriggerCrisisIntervention(ctx context.Context, req *cmd.TriggerCrisisInterventionReq) (*cmd.TriggerCrisisInterventionResp, error)
	GetCrisisIntervention(ctx context.Context, req *cmd.GetCrisisInterventionReq) (*cmd.GetCrisisInterventionResp, error)
}

type CrisisService struct {
	PlanMapper         crisisplan.IMongoMapper
	InterventionMapper intervention.IMongoMapper
	Alert              AlertNotifier
}

var CrisisServiceSet = wire.NewSet(
	wire.Struct(new(CrisisService), "*"),
	wire.Bind(new(ICrisisService), new(*CrisisService)),
)

// UpdateCrisisPlan 更新危机支持计划, 每个用户至多一份, 不存在时创建
// 计划以调用方自己的身份为键, 天然不可能写到别人名下
func (s *CrisisService) UpdateCrisisPlan(ctx context.Context, req *cmd.UpdateCrisisPlanReq) (*cmd.UpdateCrisisPlanResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.CrisisPlan(req); err != nil {
		return nil, err
	}

	err = s.PlanMapper.Upsert(ctx, &crisisplan.CrisisSupportPlan{
		Owner:             uid,
		EmergencyContacts: req.EmergencyContacts,
		Hotlines:          req.Hotlines,
		PlanText:          req.PlanText,
		SupportNetwork:    req.SupportNetwork,
		UpdateTime:        time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &cmd.UpdateCrisisPlanResp{Code: 0, Msg: "success", Updated: true}, nil
}

// UpdateRiskLevel 单独更新风险等级, 不动计划正文
func (s *CrisisService) UpdateRiskLevel(ctx context.Context, req *cmd.UpdateRiskLevelReq) (*cmd.UpdateRiskLevelResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	// 等级必须是已知标签
	if _, err = risk.FromLabel(req.RiskLevel); err != nil {
		return nil, err
	}

	if err = s.PlanMapper.UpdateRiskLevel(ctx, uid, req.RiskLevel); err != nil {
		return nil, err
	}
	return &cmd.UpdateRiskLevelResp{Code: 0, Msg: "success", Updated: true}, nil
}

func (s *CrisisService) GetCrisisPlan(ctx context.Context) (*cmd.GetCrisisPlanResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.PlanMapper.FindOne(ctx, uid)
	if err != nil {
		return &cmd.GetCrisisPlanResp{Code: 0, Msg: "success", Found: false}, nil
	}

	cp := &cmd.CrisisSupportPlan{}
	if err = copier.Copy(cp, plan); err != nil {
		return nil, err
	}
	cp.UpdateTime = plan.UpdateTime.Unix()
	return &cmd.GetCrisisPlanResp{Code: 0, Msg: "success", Found: true, Plan: cp}, nil
}

// TriggerCrisisIntervention 手动触发危机干预
// 标签在{low,medium,high}之外属于入参错误, 不做降级兜底
func (s *CrisisService) TriggerCrisisIntervention(ctx context.Context, req *cmd.TriggerCrisisInterventionReq) (*cmd.TriggerCrisisInterventionResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.CrisisTrigger(req); err != nil {
		return nil, err
	}
	level, err := risk.FromLabel(req.RiskLabel)
	if err != nil {
		return nil, err
	}

	err = s.InterventionMapper.Upsert(ctx, &intervention.CrisisIntervention{
		Owner:         uid,
		Level:         int64(level),
		TriggerReason: req.TriggerReason,
		RiskLabel:     req.RiskLabel,
		CreateTime:    time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if level == risk.LevelHigh && s.Alert != nil {
		if err = s.Alert.Produce(ctx, int64(level), req.TriggerReason); err != nil {
			log.CtxError(ctx, "crisis alert produce failed, err=%s", err.Error())
		}
	}
	return &cmd.TriggerCrisisInterventionResp{Code: 0, Msg: "success", InterventionLevel: int64(level)}, nil
}

func (s *CrisisService) GetCrisisIntervention(ctx context.Context, req *cmd.GetCrisisInterventionReq) (*cmd.GetCrisisInterventionResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	i, err := s.InterventionMapper.FindOne(ctx, uid, req.Level)
	if err != nil {
		return &cmd.GetCrisisInterventionResp{Code: 0, Msg: "success", Found: false}, nil
	}

	ci := &cmd.CrisisIntervention{}
	if err = copier.Copy(ci, i); err != nil {
		return nil, err
	}
	ci.CreateTime = i.CreateTime.Unix()
	return &cmd.GetCrisisInterventionResp{Code: 0, Msg: "success", Found: true, Intervention: ci}, nil
}
