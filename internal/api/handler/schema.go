package handler

// errorBody documents the error envelope written by the central error
// handler.
type errorBody struct {
	Error    string `json:"error" example:"record not found"`
	Code     string `json:"code" example:"not_found"`
	Redirect string `json:"redirect,omitempty" example:"/login"`
}

// acceptedResponse is returned for writes that were queued.
type acceptedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status" example:"queued"`
}
