package check

// Request is the body of POST /api/v1/mpin/check. Dates are optional,
// YYYY-MM-DD; an absent date simply contributes no demographic signal.
type Request struct {
	PIN         string `json:"pin"`
	DOBSelf     string `json:"dob_self,omitempty"`
	DOBSpouse   string `json:"dob_spouse,omitempty"`
	Anniversary string `json:"anniversary,omitempty"`
}
