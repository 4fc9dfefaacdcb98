package models

// LeadForm is the public lead-capture submission: lead contact details plus
// the free-text message that becomes the first interest.
type LeadForm struct {
	Lead
	Message string `json:"message"`
}

// NewLeadForm creates a lead-form record. The embedded lead follows the same
// mapping rules as NewLead; the message is carried alongside for the interest
// that gets written after the lead.
func NewLeadForm(id, email, phone, firstName, lastName, message string) *LeadForm {
	return &LeadForm{
		Lead:    *NewLead(id, email, phone, firstName, lastName),
		Message: message,
	}
}

// Interest maps the form message onto an interest owned by the given lead.
// The lead id is passed explicitly because form submission may reuse an
// existing lead instead of the one embedded here.
func (f *LeadForm) Interest(leadID string) *Interest {
	return NewInterest("", leadID, f.Message)
}
