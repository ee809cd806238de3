package cmd

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type Paging struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// CounterResp 计数器查询响应, 各实体族通用
type CounterResp struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Count int64  `json:"count"`
}
