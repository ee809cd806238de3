package service

import (
	"context"
	"time"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/anonstat"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/assessment"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/conversation"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/crisisplan"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/goal"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/intervention"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/moodentry"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/progress"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/resource"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/session"
)

// 内存版mapper, 行为与mongo实现一致, 用于service层测试

func identCtx(uid string) context.Context {
	return identity.WithIdentity(context.Background(), uid)
}

type fakeCounterMapper struct {
	seq map[string]int64
}

func newFakeCounterMapper() *fakeCounterMapper {
	return &fakeCounterMapper{seq: make(map[string]int64)}
}

func (f *fakeCounterMapper) Alloc(_ context.Context, family string) (int64, error) {
	id := f.seq[family]
	f.seq[family]++
	return id, nil
}

func (f *fakeCounterMapper) Count(_ context.Context, family string) (int64, error) {
	return f.seq[family], nil
}

type fakeMoodMapper struct {
	entries map[int64]*moodentry.MoodEntry
}

func newFakeMoodMapper() *fakeMoodMapper {
	return &fakeMoodMapper{entries: make(map[int64]*moodentry.MoodEntry)}
}

func (f *fakeMoodMapper) Insert(_ context.Context, entry *moodentry.MoodEntry) error {
	f.entries[entry.EntryId] = entry
	return nil
}

func (f *fakeMoodMapper) FindOne(_ context.Context, entryId int64) (*moodentry.MoodEntry, error) {
	entry, ok := f.entries[entryId]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return entry, nil
}

type fakeGoalMapper struct {
	goals map[int64]*goal.WellnessGoal
}

func newFakeGoalMapper() *fakeGoalMapper {
	return &fakeGoalMapper{goals: make(map[int64]*goal.WellnessGoal)}
}

func (f *fakeGoalMapper) Insert(_ context.Context, g *goal.WellnessGoal) error {
	f.goals[g.GoalId] = g
	return nil
}

func (f *fakeGoalMapper) FindOne(_ context.Context, goalId int64) (*goal.WellnessGoal, error) {
	g, ok := f.goals[goalId]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return g, nil
}

func (f *fakeGoalMapper) UpdateProgress(_ context.Context, goalId, p int64) error {
	g, ok := f.goals[goalId]
	if !ok {
		return consts.ErrNotFound
	}
	g.CurrentProgress = p
	return nil
}

type fakeSessionMapper struct {
	sessions map[int64]*session.TherapySession
}

func newFakeSessionMapper() *fakeSessionMapper {
	return &fakeSessionMapper{sessions: make(map[int64]*session.TherapySession)}
}

func (f *fakeSessionMapper) Insert(_ context.Context, s *session.TherapySession) error {
	f.sessions[s.SessionId] = s
	return nil
}

func (f *fakeSessionMapper) FindOne(_ context.Context, sessionId int64) (*session.TherapySession, error) {
	s, ok := f.sessions[sessionId]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionMapper) Update(_ context.Context, s *session.TherapySession) error {
	if _, ok := f.sessions[s.SessionId]; !ok {
		return consts.ErrNotFound
	}
	f.sessions[s.SessionId] = s
	return nil
}

type conversationKey struct {
	sessionId      int64
	conversationId int64
}

type fakeConversationMapper struct {
	convs map[conversationKey]*conversation.Conversation
}

func newFakeConversationMapper() *fakeConversationMapper {
	return &fakeConversationMapper{convs: make(map[conversationKey]*conversation.Conversation)}
}

func (f *fakeConversationMapper) Insert(_ context.Context, c *conversation.Conversation) error {
	f.convs[conversationKey{c.SessionId, c.ConversationId}] = c
	return nil
}

func (f *fakeConversationMapper) FindOne(_ context.Context, sessionId, conversationId int64) (*conversation.Conversation, error) {
	c, ok := f.convs[conversationKey{sessionId, conversationId}]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

type fakeAssessmentMapper struct {
	assessments map[int64]*assessment.Assessment
}

func newFakeAssessmentMapper() *fakeAssessmentMapper {
	return &fakeAssessmentMapper{assessments: make(map[int64]*assessment.Assessment)}
}

func (f *fakeAssessmentMapper) Insert(_ context.Context, a *assessment.Assessment) error {
	f.assessments[a.AssessmentId] = a
	return nil
}

func (f *fakeAssessmentMapper) FindOne(_ context.Context, assessmentId int64) (*assessment.Assessment, error) {
	a, ok := f.assessments[assessmentId]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return a, nil
}

type interventionKey struct {
	owner string
	level int64
}

type fakeInterventionMapper struct {
	items map[interventionKey]*intervention.CrisisIntervention
}

func newFakeInterventionMapper() *fakeInterventionMapper {
	return &fakeInterventionMapper{items: make(map[interventionKey]*intervention.CrisisIntervention)}
}

func (f *fakeInterventionMapper) Upsert(_ context.Context, i *intervention.CrisisIntervention) error {
	f.items[interventionKey{i.Owner, i.Level}] = i
	return nil
}

func (f *fakeInterventionMapper) FindOne(_ context.Context, owner string, level int64) (*intervention.CrisisIntervention, error) {
	i, ok := f.items[interventionKey{owner, level}]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return i, nil
}

type fakePlanMapper struct {
	plans map[string]*crisisplan.CrisisSupportPlan
}

func newFakePlanMapper() *fakePlanMapper {
	return &fakePlanMapper{plans: make(map[string]*crisisplan.CrisisSupportPlan)}
}

func (f *fakePlanMapper) Upsert(_ context.Context, plan *crisisplan.CrisisSupportPlan) error {
	if old, ok := f.plans[plan.Owner]; ok {
		plan.RiskLevel = old.RiskLevel
	}
	f.plans[plan.Owner] = plan
	return nil
}

func (f *fakePlanMapper) UpdateRiskLevel(_ context.Context, owner, riskLevel string) error {
	plan, ok := f.plans[owner]
	if !ok {
		plan = &crisisplan.CrisisSupportPlan{Owner: owner, UpdateTime: time.Now()}
		f.plans[owner] = plan
	}
	plan.RiskLevel = riskLevel
	return nil
}

func (f *fakePlanMapper) FindOne(_ context.Context, owner string) (*crisisplan.CrisisSupportPlan, error) {
	plan, ok := f.plans[owner]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return plan, nil
}

type fakeProgressMapper struct {
	items map[string]*progress.ProgressTracking
}

func newFakeProgressMapper() *fakeProgressMapper {
	return &fakeProgressMapper{items: make(map[string]*progress.ProgressTracking)}
}

func (f *fakeProgressMapper) get(owner string) *progress.ProgressTracking {
	p, ok := f.items[owner]
	if !ok {
		p = &progress.ProgressTracking{Owner: owner}
		f.items[owner] = p
	}
	return p
}

func (f *fakeProgressMapper) IncrSessions(_ context.Context, owner string) error {
	p := f.get(owner)
	p.SessionsCompleted++
	p.CurrentStreak++
	p.LastSession = time.Now()
	return nil
}

func (f *fakeProgressMapper) AddStrategy(_ context.Context, owner, strategy string) error {
	p := f.get(owner)
	for _, s := range p.CopingStrategies {
		if s == strategy {
			return nil
		}
	}
	p.CopingStrategies = append(p.CopingStrategies, strategy)
	return nil
}

func (f *fakeProgressMapper) FindOne(_ context.Context, owner string) (*progress.ProgressTracking, error) {
	p, ok := f.items[owner]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return p, nil
}

type resourceKey struct {
	category   string
	resourceId int64
}

type fakeResourceMapper struct {
	resources map[resourceKey]*resource.TherapeuticResource
}

func newFakeResourceMapper() *fakeResourceMapper {
	return &fakeResourceMapper{resources: make(map[resourceKey]*resource.TherapeuticResource)}
}

func (f *fakeResourceMapper) Insert(_ context.Context, r *resource.TherapeuticResource) error {
	f.resources[resourceKey{r.Category, r.ResourceId}] = r
	return nil
}

func (f *fakeResourceMapper) FindOne(_ context.Context, category string, resourceId int64) (*resource.TherapeuticResource, error) {
	r, ok := f.resources[resourceKey{category, resourceId}]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return r, nil
}

type fakeAnonStatMapper struct {
	stats map[string]*anonstat.AnonymousStat
}

func newFakeAnonStatMapper() *fakeAnonStatMapper {
	return &fakeAnonStatMapper{stats: make(map[string]*anonstat.AnonymousStat)}
}

func (f *fakeAnonStatMapper) Contribute(_ context.Context, period string, score int64) error {
	st, ok := f.stats[period]
	if !ok {
		st = &anonstat.AnonymousStat{Period: period}
		f.stats[period] = st
	}
	st.Contributors++
	st.TotalScore += score
	return nil
}

func (f *fakeAnonStatMapper) FindOne(_ context.Context, period string) (*anonstat.AnonymousStat, error) {
	st, ok := f.stats[period]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return st, nil
}

type fakeAlert struct {
	levels  []int64
	reasons []string
}

func (f *fakeAlert) Produce(_ context.Context, level int64, reason string) error {
	f.levels = append(f.levels, level)
	f.reasons = append(f.reasons, reason)
	return nil
}
