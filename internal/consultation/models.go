package consultation

import "encoding/json"

// Request is a consultation (lead) submission. The typed struct is used for
// acknowledgment fields; the payload itself is forwarded to the webhook as
// received, so unknown extra fields survive the round trip.
type Request struct {
	ContactInfo    ContactInfo    `json:"contactInfo"`
	BusinessInfo   BusinessInfo   `json:"businessInfo"`
	ProjectDetails ProjectDetails `json:"projectDetails"`
	Metadata       Metadata       `json:"metadata"`
}

type ContactInfo struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone,omitempty"`
	PreferredContactMethod string `json:"preferredContactMethod"`
}

type BusinessInfo struct {
	BusinessName        string `json:"businessName,omitempty"`
	Website             string `json:"website,omitempty"`
	BusinessDescription string `json:"businessDescription"`
	CompanySize         string `json:"companySize,omitempty"`
	Industry            string `json:"industry,omitempty"`
}

type ProjectDetails struct {
	SelectedRecommendations []string `json:"selectedRecommendations"`
	Timeline                string   `json:"timeline,omitempty"`
	Budget                  string   `json:"budget,omitempty"`
	BiggestChallenge        string   `json:"biggestChallenge,omitempty"`
}

// Metadata carries the session context, including the original
// recommendation objects the visitor selected from. Those objects are
// relayed as-is and never re-validated here.
type Metadata struct {
	Source                  string            `json:"source"`
	Timestamp               string            `json:"timestamp"`
	SessionID               string            `json:"sessionId"`
	OriginalRecommendations []json.RawMessage `json:"originalRecommendations"`
}

// Ack is the acknowledgment returned to the caller after delivery.
type Ack struct {
	SubmissionID            string   `json:"submissionId"`
	Timestamp               string   `json:"timestamp"`
	Email                   string   `json:"email"`
	SelectedRecommendations []string `json:"selectedRecommendations"`
}
