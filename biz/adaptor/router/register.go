package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/assessment"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/chat"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/conversation"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/crisis"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/goal"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/mood"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/progress"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/resource"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/session"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/controller/stats"
)

func Register(r *server.Hertz) {
	root := r.Group("/", _rootMw()...)
	{
		_mood := root.Group("/mood")
		_mood.POST("/log", mood.LogMoodEntry)
		_mood.GET("/get", mood.GetMoodEntry)
		_mood.GET("/counter", mood.GetEntryCounter)
	}
	{
		_goal := root.Group("/goal")
		_goal.POST("/create", goal.CreateWellnessGoal)
		_goal.POST("/progress", goal.UpdateGoalProgress)
		_goal.GET("/get", goal.GetWellnessGoal)
		_goal.GET("/counter", goal.GetGoalCounter)
	}
	{
		_crisis := root.Group("/crisis")
		_crisis.POST("/plan/update", crisis.UpdateCrisisPlan)
		_crisis.POST("/risk/update", crisis.UpdateRiskLevel)
		_crisis.GET("/plan/get", crisis.GetCrisisPlan)
		_crisis.POST("/trigger", crisis.TriggerCrisisIntervention)
		_crisis.GET("/get", crisis.GetCrisisIntervention)
	}
	{
		_session := root.Group("/session")
		_session.POST("/start", session.StartTherapySession)
		_session.POST("/end", session.EndTherapySession)
		_session.GET("/get", session.GetTherapySession)
		_session.GET("/counter", session.GetSessionCounter)
	}
	{
		_conversation := root.Group("/conversation")
		_conversation.POST("/log", conversation.LogConversation)
		_conversation.GET("/get", conversation.GetConversation)
		_conversation.GET("/counter", conversation.GetConversationCounter)
	}
	{
		_chat := root.Group("/chat")
		_chat.GET("/", append(_chatMw(), chat.LongChat)...)
	}
	{
		_assessment := root.Group("/assessment")
		_assessment.POST("/conduct", assessment.ConductAssessment)
		_assessment.GET("/get", assessment.GetAssessment)
		_assessment.GET("/counter", assessment.GetAssessmentCounter)
	}
	{
		_progress := root.Group("/progress")
		_progress.POST("/update", progress.UpdateProgress)
		_progress.POST("/strategy", progress.LearnCopingStrategy)
		_progress.GET("/get", progress.GetProgress)
		_progress.GET("/statistics", progress.GetSessionStatistics)
	}
	{
		_resource := root.Group("/resource")
		_resource.POST("/add", resource.AddTherapeuticResource)
		_resource.GET("/get", resource.GetTherapeuticResource)
		_resource.GET("/counter", resource.GetResourceCounter)
	}
	{
		_stats := root.Group("/stats")
		_stats.POST("/contribute", stats.ContributeAnonymousData)
		_stats.GET("/get", stats.GetAnonymousStats)
	}
}
