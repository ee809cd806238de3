package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/domain/access"
	"github.com/xh-polaris/psych-wellness/biz/domain/validate"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/counter"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/goal"
)

type IGoalService interface {
	CreateWellnessGoal(ctx context.Context, req *cmd.CreateWellnessGoalReq) (*cmd.CreateWellnessGoalResp, error)
	UpdateGoalProgress(ctx context.Context, req *cmd.UpdateGoalProgressReq) (*cmd.UpdateGoalProgressResp, error)
	GetWellnessGoal(ctx context.Context, req *cmd.GetWellnessGoalReq) (*cmd.GetWellnessGoalResp, error)
	GetGoalCounter(ctx context.Context) (*cmd.CounterResp, error)
}

type GoalService struct {
	GoalMapper    goal.IMongoMapper
	CounterMapper counter.IMongoMapper
}

var GoalServiceSet = wire.NewSet(
	wire.Struct(new(GoalService), "*"),
	wire.Bind(new(IGoalService), new(*GoalService)),
)

func (s *GoalService) CreateWellnessGoal(ctx context.Context, req *cmd.CreateWellnessGoalReq) (*cmd.CreateWellnessGoalResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.WellnessGoal(req); err != nil {
		return nil, err
	}

	goalId, err := s.CounterMapper.Alloc(ctx, consts.CounterGoal)
	if err != nil {
		return nil, err
	}
	g := &goal.WellnessGoal{
		Owner:           uid,
		GoalId:          goalId,
		Name:            req.Name,
		TargetValue:     req.TargetValue,
		TargetDate:      req.TargetDate,
		Milestones:      req.Milestones,
		CurrentProgress: 0,
		CreateTime:      time.Now(),
	}
	if err = s.GoalMapper.Insert(ctx, g); err != nil {
		return nil, err
	}
	return &cmd.CreateWellnessGoalResp{Code: 0, Msg: "success", GoalId: goalId}, nil
}

// UpdateGoalProgress 更新进度并返回实际存入的值
// 他人的目标按不存在处理
func (s *GoalService) UpdateGoalProgress(ctx context.Context, req *cmd.UpdateGoalProgressReq) (*cmd.UpdateGoalProgressResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.GoalProgress(req.Progress); err != nil {
		return nil, err
	}

	g, err := s.GoalMapper.FindOne(ctx, req.GoalId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err = access.ReadGuard(uid, g.Owner); err != nil {
		return nil, err
	}

	if err = s.GoalMapper.UpdateProgress(ctx, req.GoalId, req.Progress); err != nil {
		return nil, err
	}
	return &cmd.UpdateGoalProgressResp{Code: 0, Msg: "success", Progress: req.Progress}, nil
}

func (s *GoalService) GetWellnessGoal(ctx context.Context, req *cmd.GetWellnessGoalReq) (*cmd.GetWellnessGoalResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	g, err := s.GoalMapper.FindOne(ctx, req.GoalId)
	if err != nil {
		return &cmd.GetWellnessGoalResp{Code: 0, Msg: "success", Found: false}, nil
	}
	if err = access.ReadGuard(uid, g.Owner); err != nil {
		return &cmd.GetWellnessGoalResp{Code: 0, Msg: "success", Found: false}, nil
	}

	cg := &cmd.WellnessGoal{}
	if err = copier.Copy(cg, g); err != nil {
		return nil, err
	}
	cg.CreateTime = g.CreateTime.Unix()
	return &cmd.GetWellnessGoalResp{Code: 0, Msg: "success", Found: true, Goal: cg}, nil
}

func (s *GoalService) GetGoalCounter(ctx context.Context) (*cmd.CounterResp, error) {
	count, err := s.CounterMapper.Count(ctx, consts.CounterGoal)
	if err != nil {
		return nil, err
	}
	return &cmd.CounterResp{Code: 0, Msg: "success", Count: count}, nil
}
