package responses

// ErrorResponse carries a failure message and a machine readable kind.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
