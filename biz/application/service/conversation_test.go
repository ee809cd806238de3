package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

type conversationFixture struct {
	svc           *ConversationService
	sessions      *SessionService
	interventions *fakeInterventionMapper
	alert         *fakeAlert
}

func newConversationFixture() *conversationFixture {
	counters := newFakeCounterMapper()
	sessionMapper := newFakeSessionMapper()
	interventions := newFakeInterventionMapper()
	alert := &fakeAlert{}
	return &conversationFixture{
		svc: &ConversationService{
			ConversationMapper: newFakeConversationMapper(),
			SessionMapper:      sessionMapper,
			InterventionMapper: interventions,
			CounterMapper:      counters,
			Alert:              alert,
		},
		sessions: &SessionService{
			SessionMapper: sessionMapper,
			CounterMapper: counters,
		},
		interventions: interventions,
		alert:         alert,
	}
}

func TestLogConversation(t *testing.T) {
	f := newConversationFixture()
	ctx := identCtx("alice")
	sessionId := startSession(t, f.sessions, "alice")

	resp, err := f.svc.LogConversation(ctx, &cmd.LogConversationReq{
		SessionId:   sessionId,
		UserInput:   "work has been stressful lately",
		BotResponse: "tell me more about that",
	})
	if err != nil {
		t.Fatalf("LogConversation err = %v", err)
	}
	// 无危机时观察值就是新对话的id
	if resp.Result != resp.ConversationId {
		t.Errorf("Result = %d, want conversation id %d", resp.Result, resp.ConversationId)
	}
	if resp.InterventionLevel != 0 {
		t.Errorf("InterventionLevel = %d, want 0", resp.InterventionLevel)
	}
	if len(f.alert.levels) != 0 {
		t.Error("alert produced for ordinary text")
	}
}

func TestLogConversationCrisisKeyword(t *testing.T) {
	f := newConversationFixture()
	ctx := identCtx("alice")
	sessionId := startSession(t, f.sessions, "alice")

	resp, err := f.svc.LogConversation(ctx, &cmd.LogConversationReq{
		SessionId:   sessionId,
		UserInput:   "sometimes I think about suicide",
		BotResponse: "I'm really glad you told me",
	})
	if err != nil {
		t.Fatalf("LogConversation err = %v", err)
	}
	// 命中关键词时观察值是干预等级而不是对话id
	if resp.Result != 3 {
		t.Errorf("Result = %d, want 3", resp.Result)
	}
	if resp.InterventionLevel != 3 {
		t.Errorf("InterventionLevel = %d, want 3", resp.InterventionLevel)
	}

	i, err := f.interventions.FindOne(context.Background(), "alice", 3)
	if err != nil {
		t.Fatalf("intervention not recorded: %v", err)
	}
	if i.TriggerReason != "crisis-keyword-detected" {
		t.Errorf("reason = %q", i.TriggerReason)
	}
	if len(f.alert.levels) != 1 || f.alert.levels[0] != 3 {
		t.Errorf("alert levels = %v, want [3]", f.alert.levels)
	}
}

func TestLogConversationMissingSession(t *testing.T) {
	f := newConversationFixture()
	_, err := f.svc.LogConversation(identCtx("alice"), &cmd.LogConversationReq{
		SessionId: 9,
		UserInput: "hello",
	})
	if !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLogConversationCrossUser(t *testing.T) {
	f := newConversationFixture()
	sessionId := startSession(t, f.sessions, "alice")

	// 他人的会话与不存在不可区分
	_, err := f.svc.LogConversation(identCtx("mallory"), &cmd.LogConversationReq{
		SessionId: sessionId,
		UserInput: "hello",
	})
	if !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLogConversationClosedSession(t *testing.T) {
	f := newConversationFixture()
	ctx := identCtx("alice")
	sessionId := startSession(t, f.sessions, "alice")
	if _, err := f.sessions.EndTherapySession(ctx, &cmd.EndTherapySessionReq{
		SessionId:     sessionId,
		MoodAfter:     6,
		SessionRating: 3,
	}); err != nil {
		t.Fatalf("EndTherapySession err = %v", err)
	}

	// 结束会话不妨碍补记对话
	resp, err := f.svc.LogConversation(ctx, &cmd.LogConversationReq{
		SessionId:   sessionId,
		UserInput:   "one more thought from earlier",
		BotResponse: "noted",
	})
	if err != nil {
		t.Fatalf("LogConversation on closed session err = %v", err)
	}
	if resp.Result != resp.ConversationId {
		t.Errorf("Result = %d, want %d", resp.Result, resp.ConversationId)
	}
}

func TestGetConversationHidden(t *testing.T) {
	f := newConversationFixture()
	ctx := identCtx("alice")
	sessionId := startSession(t, f.sessions, "alice")

	logged, err := f.svc.LogConversation(ctx, &cmd.LogConversationReq{
		SessionId: sessionId,
		UserInput: "hello",
	})
	if err != nil {
		t.Fatalf("LogConversation err = %v", err)
	}

	got, err := f.svc.GetConversation(ctx, &cmd.GetConversationReq{SessionId: sessionId, ConversationId: logged.ConversationId})
	if err != nil || !got.Found {
		t.Fatalf("own conversation: found=%v err=%v", got.Found, err)
	}

	other, err := f.svc.GetConversation(identCtx("mallory"), &cmd.GetConversationReq{SessionId: sessionId, ConversationId: logged.ConversationId})
	if err != nil {
		t.Fatalf("GetConversation err = %v", err)
	}
	if other.Found {
		t.Error("cross user read leaked the conversation")
	}
}
