package cmd

type (
	// LogMoodEntryReq 记录一条心情日志
	LogMoodEntryReq struct {
		MoodScore         int64    `json:"mood_score"`
		EnergyLevel       int64    `json:"energy_level"`
		StressLevel       int64    `json:"stress_level"`
		AnxietyLevel      int64    `json:"anxiety_level"`
		SleepQuality      int64    `json:"sleep_quality"`
		SocialInteraction int64    `json:"social_interaction"`
		PhysicalActivity  int64    `json:"physical_activity"`
		Notes             string   `json:"notes"`
		Triggers          []string `json:"triggers"`
		Activities        []string `json:"activities"`
		Medications       []string `json:"medications"`
	}

	LogMoodEntryResp struct {
		Code    int    `json:"code"`
		Msg     string `json:"msg"`
		EntryId int64  `json:"entry_id"`
	}

	GetMoodEntryReq struct {
		EntryId int64 `query:"entry_id"`
	}

	GetMoodEntryResp struct {
		Code  int        `json:"code"`
		Msg   string     `json:"msg"`
		Found bool       `json:"found"`
		Entry *MoodEntry `json:"entry,omitempty"`
	}

	MoodEntry struct {
		EntryId           int64    `json:"entry_id"`
		MoodScore         int64    `json:"mood_score"`
		EnergyLevel       int64    `json:"energy_level"`
		StressLevel       int64    `json:"stress_level"`
		AnxietyLevel      int64    `json:"anxiety_level"`
		SleepQuality      int64    `json:"sleep_quality"`
		SocialInteraction int64    `json:"social_interaction"`
		PhysicalActivity  int64    `json:"physical_activity"`
		Notes             string   `json:"notes"`
		Triggers          []string `json:"triggers"`
		Activities        []string `json:"activities"`
		Medications       []string `json:"medications"`
		CreateTime        int64    `json:"create_time"`
	}
)
