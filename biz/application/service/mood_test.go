package service

import (
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

func newMoodService() *MoodService {
	return &MoodService{
		MoodEntryMapper: newFakeMoodMapper(),
		CounterMapper:   newFakeCounterMapper(),
	}
}

func TestLogMoodEntry(t *testing.T) {
	svc := newMoodService()
	ctx := identCtx("alice")

	resp, err := svc.LogMoodEntry(ctx, &cmd.LogMoodEntryReq{MoodScore: 7, Notes: "fine"})
	if err != nil {
		t.Fatalf("LogMoodEntry err = %v", err)
	}
	if resp.EntryId != 0 {
		t.Errorf("first entry id = %d, want 0", resp.EntryId)
	}

	// id是全局自增的, 不按用户分段
	resp, err = svc.LogMoodEntry(identCtx("bob"), &cmd.LogMoodEntryReq{MoodScore: 3})
	if err != nil {
		t.Fatalf("LogMoodEntry err = %v", err)
	}
	if resp.EntryId != 1 {
		t.Errorf("second entry id = %d, want 1", resp.EntryId)
	}

	counter, err := svc.GetEntryCounter(ctx)
	if err != nil {
		t.Fatalf("GetEntryCounter err = %v", err)
	}
	if counter.Count != 2 {
		t.Errorf("counter = %d, want 2", counter.Count)
	}
}

func TestLogMoodEntryInvalid(t *testing.T) {
	svc := newMoodService()
	_, err := svc.LogMoodEntry(identCtx("alice"), &cmd.LogMoodEntryReq{MoodScore: 11})
	if !errors.Is(err, consts.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	// 校验失败时不分配id
	counter, _ := svc.GetEntryCounter(identCtx("alice"))
	if counter.Count != 0 {
		t.Errorf("counter = %d, want 0", counter.Count)
	}
}

func TestGetMoodEntry(t *testing.T) {
	svc := newMoodService()
	ctx := identCtx("alice")

	logged, err := svc.LogMoodEntry(ctx, &cmd.LogMoodEntryReq{MoodScore: 7, Notes: "fine", Triggers: []string{"work"}})
	if err != nil {
		t.Fatalf("LogMoodEntry err = %v", err)
	}

	got, err := svc.GetMoodEntry(ctx, &cmd.GetMoodEntryReq{EntryId: logged.EntryId})
	if err != nil {
		t.Fatalf("GetMoodEntry err = %v", err)
	}
	if !got.Found {
		t.Fatal("own entry not found")
	}
	if got.Entry.MoodScore != 7 || got.Entry.Notes != "fine" {
		t.Errorf("entry = %+v, want mood 7 notes fine", got.Entry)
	}

	// 他人的记录与不存在不可区分
	other, err := svc.GetMoodEntry(identCtx("mallory"), &cmd.GetMoodEntryReq{EntryId: logged.EntryId})
	if err != nil {
		t.Fatalf("GetMoodEntry err = %v", err)
	}
	if other.Found {
		t.Error("cross user read leaked the entry")
	}

	missing, err := svc.GetMoodEntry(ctx, &cmd.GetMoodEntryReq{EntryId: 99})
	if err != nil {
		t.Fatalf("GetMoodEntry err = %v", err)
	}
	if missing.Found {
		t.Error("missing entry reported as found")
	}
}
