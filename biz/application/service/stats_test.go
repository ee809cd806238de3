package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

func newStatsService() (*StatsService, *fakeAnonStatMapper) {
	m := newFakeAnonStatMapper()
	return &StatsService{StatMapper: m}, m
}

func TestContributeAnonymousData(t *testing.T) {
	svc, mapper := newStatsService()

	for _, tc := range []struct {
		uid   string
		score int64
	}{
		{"alice", 8},
		{"bob", 4},
	} {
		_, err := svc.ContributeAnonymousData(identCtx(tc.uid), &cmd.ContributeAnonymousDataReq{
			Score:  tc.score,
			Period: "2026-08",
		})
		if err != nil {
			t.Fatalf("ContributeAnonymousData err = %v", err)
		}
	}

	got, err := svc.GetAnonymousStats(identCtx("carol"), &cmd.GetAnonymousStatsReq{Period: "2026-08"})
	if err != nil {
		t.Fatalf("GetAnonymousStats err = %v", err)
	}
	if !got.Found {
		t.Fatal("Found = false")
	}
	if got.Stats.Contributors != 2 || got.Stats.TotalScore != 12 || got.Stats.AverageScore != 6 {
		t.Errorf("stats = %+v, want 2 contributors total 12 avg 6", got.Stats)
	}

	// 聚合里不应残留任何个体标识
	st, _ := mapper.FindOne(context.Background(), "2026-08")
	if st.Period != "2026-08" {
		t.Errorf("period = %q", st.Period)
	}
}

func TestContributeAnonymousDataInvalid(t *testing.T) {
	svc, _ := newStatsService()
	_, err := svc.ContributeAnonymousData(identCtx("alice"), &cmd.ContributeAnonymousDataReq{Score: 11, Period: "2026-08"})
	if !errors.Is(err, consts.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetAnonymousStatsMissingPeriod(t *testing.T) {
	svc, _ := newStatsService()
	got, err := svc.GetAnonymousStats(identCtx("alice"), &cmd.GetAnonymousStatsReq{Period: "1999-01"})
	if err != nil {
		t.Fatalf("GetAnonymousStats err = %v", err)
	}
	if got.Found {
		t.Error("Found = true for missing period")
	}
}

func TestStatsRequireIdentity(t *testing.T) {
	svc, _ := newStatsService()
	_, err := svc.ContributeAnonymousData(context.Background(), &cmd.ContributeAnonymousDataReq{Score: 5, Period: "2026-08"})
	if !errors.Is(err, consts.ErrInvalidUser) {
		t.Errorf("err = %v, want ErrInvalidUser", err)
	}
}
