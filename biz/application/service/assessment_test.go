package service

import (
	"context"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
)

type assessmentFixture struct {
	svc           *AssessmentService
	interventions *fakeInterventionMapper
	alert         *fakeAlert
}

func newAssessmentFixture() *assessmentFixture {
	interventions := newFakeInterventionMapper()
	alert := &fakeAlert{}
	return &assessmentFixture{
		svc: &AssessmentService{
			AssessmentMapper:   newFakeAssessmentMapper(),
			InterventionMapper: interventions,
			CounterMapper:      newFakeCounterMapper(),
			Alert:              alert,
		},
		interventions: interventions,
		alert:         alert,
	}
}

func TestConductAssessmentSevere(t *testing.T) {
	f := newAssessmentFixture()

	resp, err := f.svc.ConductAssessment(identCtx("alice"), &cmd.ConductAssessmentReq{
		AssessmentType:    "phq-9",
		QuestionsAnswered: 9,
		TotalQuestions:    9,
		RawScore:          25,
	})
	if err != nil {
		t.Fatalf("ConductAssessment err = %v", err)
	}
	// 高风险时观察值是干预等级
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
	if i.TriggerReason != "high-risk-assessment" {
		t.Errorf("reason = %q", i.TriggerReason)
	}
	if len(f.alert.levels) != 1 {
		t.Errorf("alert count = %d, want 1", len(f.alert.levels))
	}
}

func TestConductAssessmentModerate(t *testing.T) {
	f := newAssessmentFixture()

	// GAD-7重度也不触发高风险路径, 观察值是首条测评的id
	resp, err := f.svc.ConductAssessment(identCtx("alice"), &cmd.ConductAssessmentReq{
		AssessmentType:    "gad-7",
		QuestionsAnswered: 7,
		TotalQuestions:    7,
		RawScore:          20,
	})
	if err != nil {
		t.Fatalf("ConductAssessment err = %v", err)
	}
	if resp.Result != 0 {
		t.Errorf("Result = %d, want assessment id 0", resp.Result)
	}
	if resp.InterventionLevel != 2 {
		t.Errorf("InterventionLevel = %d, want 2", resp.InterventionLevel)
	}
	if len(f.alert.levels) != 0 {
		t.Error("alert produced below the high threshold")
	}
}

func TestGetAssessment(t *testing.T) {
	f := newAssessmentFixture()
	ctx := identCtx("alice")

	conducted, err := f.svc.ConductAssessment(ctx, &cmd.ConductAssessmentReq{
		AssessmentType:    "phq-9",
		QuestionsAnswered: 9,
		TotalQuestions:    9,
		RawScore:          12,
	})
	if err != nil {
		t.Fatalf("ConductAssessment err = %v", err)
	}

	got, err := f.svc.GetAssessment(ctx, &cmd.GetAssessmentReq{AssessmentId: conducted.AssessmentId})
	if err != nil {
		t.Fatalf("GetAssessment err = %v", err)
	}
	if !got.Found || got.Assessment.RawScore != 12 || got.Assessment.AssessmentType != "phq-9" {
		t.Errorf("assessment = %+v", got.Assessment)
	}

	other, err := f.svc.GetAssessment(identCtx("mallory"), &cmd.GetAssessmentReq{AssessmentId: conducted.AssessmentId})
	if err != nil {
		t.Fatalf("GetAssessment err = %v", err)
	}
	if other.Found {
		t.Error("cross user read leaked the assessment")
	}
}
