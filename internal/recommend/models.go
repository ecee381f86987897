package recommend

// BusinessProfile is the structured intake form. All fields except the
// description are advisory hints for prompt construction.
type BusinessProfile struct {
	BusinessName        string   `json:"businessName"`
	BusinessType        string   `json:"businessType"`
	BusinessDescription string   `json:"businessDescription"`
	CompanySize         string   `json:"companySize"`
	MonthlyRevenue      string   `json:"monthlyRevenue"`
	YearsInBusiness     string   `json:"yearsInBusiness"`
	PrimaryGoals        []string `json:"primaryGoals"`
	CurrentChallenges   []string `json:"currentChallenges"`
	TechComfort         string   `json:"techComfort"`
	Budget              string   `json:"budget"`
	Timeline            string   `json:"timeline"`
	FocusAreas          []string `json:"focusAreas"`
	AdditionalInfo      string   `json:"additionalInfo,omitempty"`
}

// Recommendation is a single AI-use-case or automation suggestion. The ID is
// assigned by position after filtering, never taken from the model.
type Recommendation struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	SuggestedTools  []string `json:"suggestedTools,omitempty"`
	Difficulty      string   `json:"difficulty"`
	EstimatedCost   string   `json:"estimatedCost"`
	TimeToImplement string   `json:"timeToImplement"`
}

// Request is the inbound recommendation request. Structured mode requires
// FormData; without it the request silently falls back to basic mode.
type Request struct {
	BusinessDescription string           `json:"businessDescription"`
	Structured          bool             `json:"structured,omitempty"`
	FormData            *BusinessProfile `json:"formData,omitempty"`
}

// Response is the successful recommendation payload.
type Response struct {
	Recommendations     []Recommendation `json:"recommendations"`
	BusinessDescription string           `json:"businessDescription"`
}
