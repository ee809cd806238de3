package provider

import (
	"github.com/google/wire"
	"github.com/xh-polaris/psych-wellness/biz/application/service"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/anonstat"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/assessment"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/conversation"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/counter"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/crisisplan"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/goal"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/intervention"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/moodentry"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/progress"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/resource"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mapper/session"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mq"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	MoodService         service.IMoodService
	GoalService         service.IGoalService
	CrisisService       service.ICrisisService
	SessionService      service.ISessionService
	ConversationService service.IConversationService
	ChatService         service.IChatService
	AssessmentService   service.IAssessmentService
	ProgressService     service.IProgressService
	ResourceService     service.IResourceService
	StatsService        service.IStatsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.MoodServiceSet,
	service.GoalServiceSet,
	service.CrisisServiceSet,
	service.SessionServiceSet,
	service.ConversationServiceSet,
	service.ChatServiceSet,
	service.AssessmentServiceSet,
	service.ProgressServiceSet,
	service.ResourceServiceSet,
	service.StatsServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	counter.NewMongoMapper,
	wire.Bind(new(counter.IMongoMapper), new(*counter.MongoMapper)),
	moodentry.NewMongoMapper,
	wire.Bind(new(moodentry.IMongoMapper), new(*moodentry.MongoMapper)),
	goal.NewMongoMapper,
	wire.Bind(new(goal.IMongoMapper), new(*goal.MongoMapper)),
	crisisplan.NewMongoMapper,
	wire.Bind(new(crisisplan.IMongoMapper), new(*crisisplan.MongoMapper)),
	session.NewMongoMapper,
	wire.Bind(new(session.IMongoMapper), new(*session.MongoMapper)),
	conversation.NewMongoMapper,
	wire.Bind(new(conversation.IMongoMapper), new(*conversation.MongoMapper)),
	assessment.NewMongoMapper,
	wire.Bind(new(assessment.IMongoMapper), new(*assessment.MongoMapper)),
	progress.NewMongoMapper,
	wire.Bind(new(progress.IMongoMapper), new(*progress.MongoMapper)),
	intervention.NewMongoMapper,
	wire.Bind(new(intervention.IMongoMapper), new(*intervention.MongoMapper)),
	resource.NewMongoMapper,
	wire.Bind(new(resource.IMongoMapper), new(*resource.MongoMapper)),
	anonstat.NewMongoMapper,
	wire.Bind(new(anonstat.IMongoMapper), new(*anonstat.MongoMapper)),
	mq.GetAlertProducer,
	wire.Bind(new(service.AlertNotifier), new(*mq.AlertProducer)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
