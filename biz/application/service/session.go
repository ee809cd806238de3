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
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/session"
)

type ISessionService interface {
	StartTherapySession(ctx context.Context, req *cmd.StartTherapySessionReq) (*cmd.StartTherapySessionResp, error)
	EndTherapySession(ctx context.Context, req *cmd.EndTherapySessionReq) (*cmd.EndTherapySessionResp, error)
	GetTherapySession(ctx context.Context, req *cmd.GetTherapySessionReq) (*cmd.GetTherapySessionResp, error)
	GetSessionCounter(ctx context.Context) (*cmd.CounterResp, error)
}

type SessionService struct {
	SessionMapper session.IMongoMapper
	CounterMapper counter.IMongoMapper
}

var SessionServiceSet = wire.NewSet(
	wire.Struct(new(SessionService), "*"),
	wire.Bind(new(ISessionService), new(*SessionService)),
)

func (s *SessionService) StartTherapySession(ctx context.Context, req *cmd.StartTherapySessionReq) (*cmd.StartTherapySessionResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.TherapySessionStart(req); err != nil {
		return nil, err
	}

	sessionId, err := s.CounterMapper.Alloc(ctx, consts.CounterSession)
	if err != nil {
		return nil, err
	}
	ts := &session.TherapySession{
		Owner:      uid,
		SessionId:  sessionId,
		Topic:      req.Topic,
		Modality:   req.Modality,
		Status:     consts.SessionOpen,
		MoodBefore: req.MoodBefore,
		StartTime:  time.Now(),
	}
	if err = s.SessionMapper.Insert(ctx, ts); err != nil {
		return nil, err
	}
	return &cmd.StartTherapySessionResp{Code: 0, Msg: "success", SessionId: sessionId}, nil
}

// EndTherapySession 结束会话
// 跨用户结束别人的会话是显式拒绝而不是隐藏: 调用方本就知道这个id存在
// 结束是单向转换, 已结束的会话不能再次结束
func (s *SessionService) EndTherapySession(ctx context.Context, req *cmd.EndTherapySessionReq) (*cmd.EndTherapySessionResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.TherapySessionEnd(req); err != nil {
		return nil, err
	}

	ts, err := s.SessionMapper.FindOne(ctx, req.SessionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err = access.WriteGuard(uid, ts.Owner); err != nil {
		return nil, err
	}
	if ts.Status != consts.SessionOpen {
		return nil, consts.ErrInvalidInput
	}

	ts.Status = consts.SessionClosed
	ts.MoodAfter = req.MoodAfter
	ts.TopicsDiscussed = req.TopicsDiscussed
	ts.ProgressNotes = req.ProgressNotes
	ts.HomeworkAssigned = req.HomeworkAssigned
	ts.SessionRating = req.SessionRating
	ts.EndTime = time.Now()
	if err = s.SessionMapper.Update(ctx, ts); err != nil {
		return nil, err
	}
	return &cmd.EndTherapySessionResp{Code: 0, Msg: "success", Ended: true}, nil
}

func (s *SessionService) GetTherapySession(ctx context.Context, req *cmd.GetTherapySessionReq) (*cmd.GetTherapySessionResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	ts, err := s.SessionMapper.FindOne(ctx, req.SessionId)
	if err != nil {
		return &cmd.GetTherapySessionResp{Code: 0, Msg: "success", Found: false}, nil
	}
	if err = access.ReadGuard(uid, ts.Owner); err != nil {
		return &cmd.GetTherapySessionResp{Code: 0, Msg: "success", Found: false}, nil
	}

	cs := &cmd.TherapySession{}
	if err = copier.Copy(cs, ts); err != nil {
		return nil, err
	}
	cs.StartTime = ts.StartTime.Unix()
	cs.EndTime = ts.EndTime.Unix()
	return &cmd.GetTherapySessionResp{Code: 0, Msg: "success", Found: true, Session: cs}, nil
}

func (s *SessionService) GetSessionCounter(ctx context.Context) (*cmd.CounterResp, error) {
	count, err := s.CounterMapper.Count(ctx, consts.CounterSession)
	if err != nil {
		return nil, err
	}
	return &cmd.CounterResp{Code: 0, Msg: "success", Count: count}, nil
}
