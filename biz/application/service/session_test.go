package service

import (
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

func newSessionService() *SessionService {
	return &SessionService{
		SessionMapper: newFakeSessionMapper(),
		CounterMapper: newFakeCounterMapper(),
	}
}

func startSession(t *testing.T, svc *SessionService, uid string) int64 {
	t.Helper()
	resp, err := svc.StartTherapySession(identCtx(uid), &cmd.StartTherapySessionReq{
		Topic:      "anxiety management",
		MoodBefore: 4,
		Modality:   "cbt",
	})
	if err != nil {
		t.Fatalf("StartTherapySession err = %v", err)
	}
	return resp.SessionId
}

func TestSessionLifecycle(t *testing.T) {
	svc := newSessionService()
	ctx := identCtx("alice")
	sessionId := startSession(t, svc, "alice")

	got, err := svc.GetTherapySession(ctx, &cmd.GetTherapySessionReq{SessionId: sessionId})
	if err != nil {
		t.Fatalf("GetTherapySession err = %v", err)
	}
	if !got.Found || got.Session.Status != consts.SessionOpen {
		t.Fatalf("session = %+v, want open", got.Session)
	}

	ended, err := svc.EndTherapySession(ctx, &cmd.EndTherapySessionReq{
		SessionId:     sessionId,
		MoodAfter:     7,
		ProgressNotes: "made progress on triggers",
		SessionRating: 4,
	})
	if err != nil {
		t.Fatalf("EndTherapySession err = %v", err)
	}
	if !ended.Ended {
		t.Error("Ended = false")
	}

	got, _ = svc.GetTherapySession(ctx, &cmd.GetTherapySessionReq{SessionId: sessionId})
	if got.Session.Status != consts.SessionClosed || got.Session.MoodAfter != 7 {
		t.Errorf("session = %+v, want closed mood 7", got.Session)
	}
}

func TestEndTherapySessionCrossUser(t *testing.T) {
	svc := newSessionService()
	sessionId := startSession(t, svc, "alice")

	// 调用方知道会话存在, 写路径是显式拒绝而不是隐藏
	_, err := svc.EndTherapySession(identCtx("mallory"), &cmd.EndTherapySessionReq{
		SessionId:     sessionId,
		MoodAfter:     5,
		SessionRating: 3,
	})
	if !errors.Is(err, consts.ErrNotAuthorized) {
		t.Errorf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestEndTherapySessionTwice(t *testing.T) {
	svc := newSessionService()
	ctx := identCtx("alice")
	sessionId := startSession(t, svc, "alice")

	req := &cmd.EndTherapySessionReq{SessionId: sessionId, MoodAfter: 6, SessionRating: 3}
	if _, err := svc.EndTherapySession(ctx, req); err != nil {
		t.Fatalf("first end err = %v", err)
	}
	if _, err := svc.EndTherapySession(ctx, req); !errors.Is(err, consts.ErrInvalidInput) {
		t.Errorf("second end err = %v, want ErrInvalidInput", err)
	}
}

func TestEndTherapySessionMissing(t *testing.T) {
	svc := newSessionService()
	_, err := svc.EndTherapySession(identCtx("alice"), &cmd.EndTherapySessionReq{
		SessionId:     7,
		MoodAfter:     6,
		SessionRating: 3,
	})
	if !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetTherapySessionHidden(t *testing.T) {
	svc := newSessionService()
	sessionId := startSession(t, svc, "alice")

	got, err := svc.GetTherapySession(identCtx("mallory"), &cmd.GetTherapySessionReq{SessionId: sessionId})
	if err != nil {
		t.Fatalf("GetTherapySession err = %v", err)
	}
	if got.Found {
		t.Error("cross user read leaked the session")
	}
}
