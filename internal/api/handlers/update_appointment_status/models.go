package update_appointment_status

// UpdateStatusRequest is the HTTP request model. The acting provider is
// identified by the X-Provider-Ref header, never by the body.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
