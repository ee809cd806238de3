package service

import (
	"context"

	"github.com/google/wire"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/domain/validate"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/progress"
)

type IProgressService interface {
	UpdateProgress(ctx context.Context) (*cmd.UpdateProgressResp, error)
	LearnCopingStrategy(ctx context.Context, req *cmd.LearnCopingStrategyReq) (*cmd.LearnCopingStrategyResp, error)
	GetProgress(ctx context.Context) (*cmd.GetProgressResp, error)
	GetSessionStatistics(ctx context.Context) (*cmd.GetSessionStatisticsResp, error)
}

type ProgressService struct {
	ProgressMapper progress.IMongoMapper
}

var ProgressServiceSet = wire.NewSet(
	wire.Struct(new(ProgressService), "*"),
	wire.Bind(new(IProgressService), new(*ProgressService)),
)

// UpdateProgress 完成一次会谈后累计进度, 首次调用时创建进度记录
func (s *ProgressService) UpdateProgress(ctx context.Context) (*cmd.UpdateProgressResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = s.ProgressMapper.IncrSessions(ctx, uid); err != nil {
		return nil, err
	}
	return &cmd.UpdateProgressResp{Code: 0, Msg: "success", Updated: true}, nil
}

// LearnCopingStrategy 记录已掌握的应对策略, 集合语义, 重复学习不重复计数
func (s *ProgressService) LearnCopingStrategy(ctx context.Context, req *cmd.LearnCopingStrategyReq) (*cmd.LearnCopingStrategyResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.CopingStrategy(req.Strategy); err != nil {
		return nil, err
	}
	if err = s.ProgressMapper.AddStrategy(ctx, uid, req.Strategy); err != nil {
		return nil, err
	}
	return &cmd.LearnCopingStrategyResp{Code: 0, Msg: "success", Learned: true}, nil
}

func (s *ProgressService) GetProgress(ctx context.Context) (*cmd.GetProgressResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.ProgressMapper.FindOne(ctx, uid)
	if err != nil {
		return &cmd.GetProgressResp{Code: 0, Msg: "success", Found: false}, nil
	}
	return &cmd.GetProgressResp{Code: 0, Msg: "success", Found: true, Progress: &cmd.ProgressTracking{
		SessionsCompleted: p.SessionsCompleted,
		CopingStrategies:  p.CopingStrategies,
		CurrentStreak:     p.CurrentStreak,
		LastSession:       p.LastSession.Unix(),
	}}, nil
}

// GetSessionStatistics 返回进度记录的派生统计视图
func (s *ProgressService) GetSessionStatistics(ctx context.Context) (*cmd.GetSessionStatisticsResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.ProgressMapper.FindOne(ctx, uid)
	if err != nil {
		return &cmd.GetSessionStatisticsResp{Code: 0, Msg: "success", Found: false}, nil
	}
	return &cmd.GetSessionStatisticsResp{Code: 0, Msg: "success", Found: true, Statistics: &cmd.SessionStatistics{
		TotalSessions:     p.SessionsCompleted,
		StrategiesLearned: int64(len(p.CopingStrategies)),
		CurrentStreak:     p.CurrentStreak,
		LastSession:       p.LastSession.Unix(),
	}}, nil
}
