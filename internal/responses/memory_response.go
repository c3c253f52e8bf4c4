package responses

import "os-simulator/internal/memory"

type MemoryResponse struct {
	SessionId     string                       `json:"session_id"`
	Usage         memory.Usage                 `json:"usage"`
	Allocations   []memory.Allocation          `json:"allocations"`
	FreeRegions   []memory.Region              `json:"free_regions"`
	Fragmentation memory.FragmentationSnapshot `json:"fragmentation"`
}

func NewMemoryResponse(sessionId string, layout memory.Layout) MemoryResponse {
	return MemoryResponse{
		SessionId:     sessionId,
		Usage:         layout.Usage,
		Allocations:   layout.Allocations,
		FreeRegions:   layout.FreeRegions,
		Fragmentation: layout.Fragmentation,
	}
}

type AllocationResponse struct {
	Allocation memory.Allocation `json:"allocation"`
	Memory     MemoryResponse    `json:"memory"`
}
