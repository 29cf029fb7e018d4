package types

type BaseResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// UpdateRequest is the body of PUT /api/keyvalue/{key}
type UpdateRequest struct {
	Value *string `json:"value"`
}

type StatsResponse struct {
	BaseResponse
	TotalKeys int   `json:"total_keys"`
	TotalSize int64 `json:"total_size"`
	Shards    int   `json:"shards"`
}
