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
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/conversation"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/counter"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/intervention"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/session"
)

type IConversationService interface {
	LogConversation(ctx context.Context, req *cmd.LogConversationReq) (*cmd.LogConversationResp, error)
	GetConversation(ctx context.Context, req *cmd.GetConversationReq) (*cmd.GetConversationResp, error)
	GetConversationCounter(ctx context.Context) (*cmd.CounterResp, error)
}

type ConversationService struct {
	ConversationMapper conversation.IMongoMapper
	SessionMapper      session.IMongoMapper
	InterventionMapper intervention.IMongoMapper
	CounterMapper      counter.IMongoMapper
	Alert              AlertNotifier
}

var ConversationServiceSet = wire.NewSet(
	wire.Struct(new(ConversationService), "*"),
	wire.Bind(new(IConversationService), new(*ConversationService)),
)

// LogConversation 记录一轮对话
// 父会话必须存在且属于调用方, 他人的会话按不存在处理
// 会话已结束不妨碍补记对话
// 命中危机关键词时升级为危机干预, 响应里的观察值是干预等级而不是对话id
func (s *ConversationService) LogConversation(ctx context.Context, req *cmd.LogConversationReq) (*cmd.LogConversationResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.Conversation(req); err != nil {
		return nil, err
	}

	ts, err := s.SessionMapper.FindOne(ctx, req.SessionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err = access.ReadGuard(uid, ts.Owner); err != nil {
		return nil, err
	}

	level := risk.FromText(req.UserInput)

	conversationId, err := s.CounterMapper.Alloc(ctx, consts.CounterConversation)
	if err != nil {
		return nil, err
	}
	c := &conversation.Conversation{
		Owner:                uid,
		SessionId:            req.SessionId,
		ConversationId:       conversationId,
		UserInput:            req.UserInput,
		BotResponse:          req.BotResponse,
		ConversationContext:  req.ConversationContext,
		TherapeuticTechnique: req.TherapeuticTechnique,
		SentimentAnalysis:    req.SentimentAnalysis,
		InterventionLevel:    int64(level),
		CreateTime:           time.Now(),
	}
	if err = s.ConversationMapper.Insert(ctx, c); err != nil {
		return nil, err
	}

	result := conversationId
	if level == risk.LevelHigh {
		if err = s.recordIntervention(ctx, uid, level, "crisis-keyword-detected"); err != nil {
			return nil, err
		}
		result = int64(level)
	}
	return &cmd.LogConversationResp{
		Code:              0,
		Msg:               "success",
		Result:            result,
		ConversationId:    conversationId,
		InterventionLevel: int64(level),
	}, nil
}

func (s *ConversationService) GetConversation(ctx context.Context, req *cmd.GetConversationReq) (*cmd.GetConversationResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.ConversationMapper.FindOne(ctx, req.SessionId, req.ConversationId)
	if err != nil {
		return &cmd.GetConversationResp{Code: 0, Msg: "success", Found: false}, nil
	}
	if err = access.ReadGuard(uid, c.Owner); err != nil {
		return &cmd.GetConversationResp{Code: 0, Msg: "success", Found: false}, nil
	}

	cc := &cmd.Conversation{}
	if err = copier.Copy(cc, c); err != nil {
		return nil, err
	}
	cc.CreateTime = c.CreateTime.Unix()
	return &cmd.GetConversationResp{Code: 0, Msg: "success", Found: true, Conversation: cc}, nil
}

func (s *ConversationService) GetConversationCounter(ctx context.Context) (*cmd.CounterResp, error) {
	count, err := s.CounterMapper.Count(ctx, consts.CounterConversation)
	if err != nil {
		return nil, err
	}
	return &cmd.CounterResp{Code: 0, Msg: "success", Count: count}, nil
}

// recordIntervention 落危机干预记录并发预警
// 干预记录以(owner, level)为键, 同级重复触发覆盖
func (s *ConversationService) recordIntervention(ctx context.Context, uid string, level risk.Level, reason string) error {
	err := s.InterventionMapper.Upsert(ctx, &intervention.CrisisIntervention{
		Owner:         uid,
		Level:         int64(level),
		TriggerReason: reason,
		RiskLabel:     consts.RiskHigh,
		CreateTime:    time.Now(),
	})
	if err != nil {
		return err
	}
	if s.Alert != nil {
		if err = s.Alert.Produce(ctx, int64(level), reason); err != nil {
			log.CtxError(ctx, "crisis alert produce failed, err=%s", err.Error())
		}
	}
	return nil
}
