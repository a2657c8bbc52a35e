package providerdirectory

// Provider is a service professional's profile as exposed by the
// directory service. Profiles and identity are owned there; this service
// only reads them.
type Provider struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	ShopName    string `json:"shop_name"`
	Active      bool   `json:"active"`
}

// ErrorResponse is the directory service error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
