package service

import (
	"context"

	"github.com/google/wire"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/domain/validate"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/anonstat"
)

type IStatsService interface {
	ContributeAnonymousData(ctx context.Context, req *cmd.ContributeAnonymousDataReq) (*cmd.ContributeAnonymousDataResp, error)
	GetAnonymousStats(ctx context.Context, req *cmd.GetAnonymousStatsReq) (*cmd.GetAnonymousStatsResp, error)
}

type StatsService struct {
	StatMapper anonstat.IMongoMapper
}

var StatsServiceSet = wire.NewSet(
	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),
)

// ContributeAnonymousData 匿名贡献一条心情得分
// 调用需要登录态, 但落库只累计聚合值, 不保留贡献者身份
func (s *StatsService) ContributeAnonymousData(ctx context.Context, req *cmd.ContributeAnonymousDataReq) (*cmd.ContributeAnonymousDataResp, error) {
	if _, err := identity.FromContext(ctx); err != nil {
		return nil, err
	}
	if err := validate.AnonymousContribution(req); err != nil {
		return nil, err
	}
	if err := s.StatMapper.Contribute(ctx, req.Period, req.Score); err != nil {
		return nil, err
	}
	return &cmd.ContributeAnonymousDataResp{Code: 0, Msg: "success", Contributed: true}, nil
}

func (s *StatsService) GetAnonymousStats(ctx context.Context, req *cmd.GetAnonymousStatsReq) (*cmd.GetAnonymousStatsResp, error) {
	if _, err := identity.FromContext(ctx); err != nil {
		return nil, err
	}

	st, err := s.StatMapper.FindOne(ctx, req.Period)
	if err != nil {
		return &cmd.GetAnonymousStatsResp{Code: 0, Msg: "success", Found: false}, nil
	}

	avg := int64(0)
	if st.Contributors > 0 {
		avg = st.TotalScore / st.Contributors
	}
	return &cmd.GetAnonymousStatsResp{Code: 0, Msg: "success", Found: true, Stats: &cmd.AnonymousStats{
		Period:       st.Period,
		Contributors: st.Contributors,
		TotalScore:   st.TotalScore,
		AverageScore: avg,
	}}, nil
}
