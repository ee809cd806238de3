package cmd

type (
	// ContributeAnonymousDataReq 匿名贡献一条心情得分, 入库时丢弃贡献者身份
	ContributeAnonymousDataReq struct {
		Score  int64  `json:"score"`
		Period string `json:"period"`
	}

	ContributeAnonymousDataResp struct {
		Code        int    `json:"code"`
		Msg         string `json:"msg"`
		Contributed bool   `json:"contributed"`
	}

	GetAnonymousStatsReq struct {
		Period string `query:"period"`
	}

	GetAnonymousStatsResp struct {
		Code  int             `json:"code"`
		Msg   string          `json:"msg"`
		Found bool            `json:"found"`
		Stats *AnonymousStats `json:"stats,omitempty"`
	}

	// AnonymousStats 只暴露聚合值, 不含任何个体标识
	AnonymousStats struct {
		Period       string `json:"period"`
		Contributors int64  `json:"contributors"`
		TotalScore   int64  `json:"total_score"`
		AverageScore int64  `json:"average_score"`
	}
)
