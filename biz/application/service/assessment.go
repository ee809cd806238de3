package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/domain/access"
	"github.com/xh-polaris/psych-wellness/biz/domain/risk"
	"github.com/xh-polaris/psych-wellness/biz/domain/validate"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/assessment"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/counter"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/intervention"
)

type IAssessmentService interface {
	ConductAssessment(ctx context.Context, req *cmd.ConductAssessmentReq) (*cmd.ConductAssessmentResp, error)
	GetAssessment(ctx context.Context, req *cmd.GetAssessmentReq) (*cmd.GetAssessmentResp, error)
	GetAssessmentCounter(ctx context.Context) (*cmd.CounterResp, error)
}

type AssessmentService struct {
	AssessmentMapper   assessment.IMongoMapper
	InterventionMapper intervention.IMongoMapper
	CounterMapper      counter.IMongoMapper
	Alert              AlertNotifier
}

var AssessmentServiceSet = wire.NewSet(
	wire.Struct(new(AssessmentService), "*"),
	wire.Bind(new(IAssessmentService), new(*AssessmentService)),
)

// ConductAssessment 完成一次量表测评
// 得分归一化后判级, 高风险时升级为危机干预, 观察值是干预等级而不是测评id
func (s *AssessmentService) ConductAssessment(ctx context.Context, req *cmd.ConductAssessmentReq) (*cmd.ConductAssessmentResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.Assessment(req); err != nil {
		return nil, err
	}

	level := risk.FromAssessment(req.RawScore)

	assessmentId, err := s.CounterMapper.Alloc(ctx, consts.CounterAssessment)
	if err != nil {
		return nil, err
	}
	a := &assessment.Assessment{
		Owner:             uid,
		AssessmentId:      assessmentId,
		AssessmentType:    req.AssessmentType,
		QuestionsAnswered: req.QuestionsAnswered,
		TotalQuestions:    req.TotalQuestions,
		RawScore:          req.RawScore,
		InterventionLevel: int64(level),
		CreateTime:        time.Now(),
	}
	if err = s.AssessmentMapper.Insert(ctx, a); err != nil {
		return nil, err
	}

	result := assessmentId
	if level == risk.LevelHigh {
		err = s.InterventionMapper.Upsert(ctx, &intervention.CrisisIntervention{
			Owner:         uid,
			Level:         int64(level),
			TriggerReason: "high-risk-assessment",
			RiskLabel:     consts.RiskHigh,
			CreateTime:    time.Now(),
		})
		if err != nil {
			return nil, err
		}
		if s.Alert != nil {
			if err = s.Alert.Produce(ctx, int64(level), "high-risk-assessment"); err != nil {
				log.CtxError(ctx, "crisis alert produce failed, err=%s", err.Error())
			}
		}
		result = int64(level)
	}
	return &cmd.ConductAssessmentResp{
		Code:              0,
		Msg:               "success",
		Result:            result,
		AssessmentId:      assessmentId,
		InterventionLevel: int64(level),
	}, nil
}

func (s *AssessmentService) GetAssessment(ctx context.Context, req *cmd.GetAssessmentReq) (*cmd.GetAssessmentResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.AssessmentMapper.FindOne(ctx, req.AssessmentId)
	if err != nil {
		return &cmd.GetAssessmentResp{Code: 0, Msg: "success", Found: false}, nil
	}
	if err = access.ReadGuard(uid, a.Owner); err != nil {
		return &cmd.GetAssessmentResp{Code: 0, Msg: "success", Found: false}, nil
	}

	ca := &cmd.Assessment{}
	if err = copier.Copy(ca, a); err != nil {
		return nil, err
	}
	ca.CreateTime = a.CreateTime.Unix()
	return &cmd.GetAssessmentResp{Code: 0, Msg: "success", Found: true, Assessment: ca}, nil
}

func (s *AssessmentService) GetAssessmentCounter(ctx context.Context) (*cmd.CounterResp, error) {
	count, err := s.CounterMapper.Count(ctx, consts.CounterAssessment)
	if err != nil {
		return nil, err
	}
	return &cmd.CounterResp{Code: 0, Msg: "success", Count: count}, nil
}
