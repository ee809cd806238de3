package cmd

type (
	// AddTherapeuticResourceReq 添加疗愈资源, 仅管理员可用
	AddTherapeuticResourceReq struct {
		Category            string   `json:"category"`
		Name                string   `json:"name"`
		Description         string   `json:"description"`
		Tag                 string   `json:"tag"`
		EffectivenessRating int64    `json:"effectiveness_rating"`
		Difficulty          string   `json:"difficulty"`
		AppliesTo           []string `json:"applies_to"`
	}

	AddTherapeuticResourceResp struct {
		Code       int    `json:"code"`
		Msg        string `json:"msg"`
		ResourceId int64  `json:"resource_id"`
	}

	GetTherapeuticResourceReq struct {
		Category   string `query:"category"`
		ResourceId int64  `query:"resource_id"`
	}

	GetTherapeuticResourceResp struct {
		Code     int                  `json:"code"`
		Msg      string               `json:"msg"`
		Found    bool                 `json:"found"`
		Resource *TherapeuticResource `json:"resource,omitempty"`
	}

	TherapeuticResource struct {
		Category            string   `json:"category"`
		ResourceId          int64    `json:"resource_id"`
		Name                string   `json:"name"`
		Description         string   `json:"description"`
		Tag                 string   `json:"tag"`
		EffectivenessRating int64    `json:"effectiveness_rating"`
		Difficulty          string   `json:"difficulty"`
		AppliesTo           []string `json:"applies_to"`
		CreateTime          int64    `json:"create_time"`
	}
)
