package cancel_appointment

// CancelAppointmentRequest is the HTTP request model. Who is cancelling
// comes from the identity headers, never from the body.
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
