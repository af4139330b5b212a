package status

// Response is the flat JSON form of a status code. It carries enough to
// identify the code across processes without exposing its payload bytes.
type Response struct {
	// Domain is the name of the code's domain.
	Domain string `json:"domain"`

	// DomainID is the hexadecimal identity of the domain.
	DomainID string `json:"domain_id"`

	// Value is the domain's rendering of the value.
	Value string `json:"value"`

	// Message is the human-readable message.
	Message string `json:"message"`

	// Success reports whether the code represents success.
	Success bool `json:"success"`

	// Generic is the name of the generic condition, omitted when unknown.
	Generic string `json:"generic,omitempty"`
}

// ToJSON converts a code to a Response. Returns nil for nil or empty codes.
//
// Example:
//
//	func writeStatus(w http.ResponseWriter, c status.Code) {
//	    w.Header().Set("Content-Type", "application/json")
//	    json.NewEncoder(w).Encode(status.ToJSON(c))
//	}
func ToJSON(c Code) *Response {
	d := domainOf(c)
	if d == nil {
		return nil
	}

	resp := &Response{
		Domain:   d.Name(),
		DomainID: d.ID().String(),
		Value:    d.formatValue(c),
		Message:  c.Message(),
		Success:  c.Success(),
	}
	if g := c.Generic(); g != ErrcUnknown {
		resp.Generic = g.String()
	}
	return resp
}
