package cmd

type (
	// UpdateCrisisPlanReq 更新危机支持计划, 每个用户至多一份, 不存在时创建
	UpdateCrisisPlanReq struct {
		EmergencyContacts []string `json:"emergency_contacts"`
		Hotlines          []string `json:"hotlines"`
		PlanText          string   `json:"plan_text"`
		SupportNetwork    []string `json:"support_network"`
	}

	UpdateCrisisPlanResp struct {
		Code    int    `json:"code"`
		Msg     string `json:"msg"`
		Updated bool   `json:"updated"`
	}

	// UpdateRiskLevelReq 单独更新风险等级, 不动计划正文
	UpdateRiskLevelReq struct {
		RiskLevel string `json:"risk_level"`
	}

	UpdateRiskLevelResp struct {
		Code    int    `json:"code"`
		Msg     string `json:"msg"`
		Updated bool   `json:"updated"`
	}

	GetCrisisPlanResp struct {
		Code  int                `json:"code"`
		Msg   string             `json:"msg"`
		Found bool               `json:"found"`
		Plan  *CrisisSupportPlan `json:"plan,omitempty"`
	}

	CrisisSupportPlan struct {
		EmergencyContacts []string `json:"emergency_contacts"`
		Hotlines          []string `json:"hotlines"`
		PlanText          string   `json:"plan_text"`
		SupportNetwork    []string `json:"support_network"`
		RiskLevel         string   `json:"risk_level"`
		UpdateTime        int64    `json:"update_time"`
	}

	// TriggerCrisisInterventionReq 手动触发危机干预
	TriggerCrisisInterventionReq struct {
		TriggerReason string `json:"trigger_reason"`
		RiskLabel     string `json:"risk_label"`
	}

	TriggerCrisisInterventionResp struct {
		Code              int    `json:"code"`
		Msg               string `json:"msg"`
		InterventionLevel int64  `json:"intervention_level"`
	}

	GetCrisisInterventionReq struct {
		Level int64 `query:"level"`
	}

	GetCrisisInterventionResp struct {
		Code         int                 `json:"code"`
		Msg          string              `json:"msg"`
		Found        bool                `json:"found"`
		Intervention *CrisisIntervention `json:"intervention,omitempty"`
	}

	CrisisIntervention struct {
		Level         int64  `json:"level"`
		TriggerReason string `json:"trigger_reason"`
		RiskLabel     string `json:"risk_label"`
		CreateTime    int64  `json:"create_time"`
	}
)
