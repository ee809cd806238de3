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
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/moodentry"
)

type IMoodService interface {
	LogMoodEntry(ctx context.Context, req *cmd.LogMoodEntryReq) (*cmd.LogMoodEntryResp, error)
	GetMoodEntry(ctx context.Context, req *cmd.GetMoodEntryReq) (*cmd.GetMoodEntryResp, error)
	GetEntryCounter(ctx context.Context) (*cmd.CounterResp, error)
}

type MoodService struct {
	MoodEntryMapper moodentry.IMongoMapper
	CounterMapper   counter.IMongoMapper
}

var MoodServiceSet = wire.NewSet(
	wire.Struct(new(MoodService), "*"),
	wire.Bind(new(IMoodService), new(*MoodService)),
)

// LogMoodEntry 记录一条心情日志, 校验通过后才分配id
func (s *MoodService) LogMoodEntry(ctx context.Context, req *cmd.LogMoodEntryReq) (*cmd.LogMoodEntryResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = validate.MoodEntry(req); err != nil {
		return nil, err
	}

	entryId, err := s.CounterMapper.Alloc(ctx, consts.CounterMoodEntry)
	if err != nil {
		return nil, err
	}
	entry := &moodentry.MoodEntry{
		Owner:             uid,
		EntryId:           entryId,
		MoodScore:         req.MoodScore,
		EnergyLevel:       req.EnergyLevel,
		StressLevel:       req.StressLevel,
		AnxietyLevel:      req.AnxietyLevel,
		SleepQuality:      req.SleepQuality,
		SocialInteraction: req.SocialInteraction,
		PhysicalActivity:  req.PhysicalActivity,
		Notes:             req.Notes,
		Triggers:          req.Triggers,
		Activities:        req.Activities,
		Medications:       req.Medications,
		CreateTime:        time.Now(),
	}
	if err = s.MoodEntryMapper.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return &cmd.LogMoodEntryResp{Code: 0, Msg: "success", EntryId: entryId}, nil
}

// GetMoodEntry 查询自己的心情日志, 他人的记录与不存在不可区分
func (s *MoodService) GetMoodEntry(ctx context.Context, req *cmd.GetMoodEntryReq) (*cmd.GetMoodEntryResp, error) {
	uid, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.MoodEntryMapper.FindOne(ctx, req.EntryId)
	if err != nil {
		return &cmd.GetMoodEntryResp{Code: 0, Msg: "success", Found: false}, nil
	}
	if err = access.ReadGuard(uid, entry.Owner); err != nil {
		return &cmd.GetMoodEntryResp{Code: 0, Msg: "success", Found: false}, nil
	}

	ce := &cmd.MoodEntry{}
	if err = copier.Copy(ce, entry); err != nil {
		return nil, err
	}
	ce.CreateTime = entry.CreateTime.Unix()
	return &cmd.GetMoodEntryResp{Code: 0, Msg: "success", Found: true, Entry: ce}, nil
}

func (s *MoodService) GetEntryCounter(ctx context.Context) (*cmd.CounterResp, error) {
	count, err := s.CounterMapper.Count(ctx, consts.CounterMoodEntry)
	if err != nil {
		return nil, err
	}
	return &cmd.CounterResp{Code: 0, Msg: "success", Count: count}, nil
}
