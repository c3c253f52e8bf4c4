package requests

type CreateMemoryRequest struct {
	Capacity int `json:"capacity"`
}

type AllocateRequest struct {
	PID      string `json:"pid"`
	Size     int    `json:"size"`
	Strategy string `json:"strategy"`
}

type ReinitializeRequest struct {
	Capacity int `json:"capacity"`
}
