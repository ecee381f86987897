package consultation

import "brighterbiz-api/internal/common/validation"

// RequestSchema returns the validation schema for a consultation request.
// Unknown extra fields are ignored at every level.
func RequestSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:                 "object",
		Required:             []string{"contactInfo", "businessInfo", "projectDetails", "metadata"},
		AdditionalProperties: true,
		Properties: map[string]validation.Property{
			"contactInfo": {
				Type:     "object",
				Required: []string{"firstName", "lastName", "email", "preferredContactMethod"},
				Properties: map[string]validation.Property{
					"firstName": {
						Type:        "string",
						Description: "First name of the contact",
						MinLength:   intPtr(1),
					},
					"lastName": {
						Type:        "string",
						Description: "Last name of the contact",
						MinLength:   intPtr(1),
					},
					"email": {
						Type:        "string",
						Description: "Email address of the contact",
						Format:      "email",
					},
					"phone": {
						Type:        "string",
						Description: "Phone number",
					},
					"preferredContactMethod": {
						Type:        "string",
						Description: "How the contact wants to be reached",
						Enum:        []string{"email", "phone"},
					},
				},
			},
			"businessInfo": {
				Type:     "object",
				Required: []string{"businessDescription"},
				Properties: map[string]validation.Property{
					"businessName": {
						Type:        "string",
						Description: "Business name",
					},
					"website": {
						Type:        "string",
						Description: "Business website, URL or empty",
						Format:      "url",
					},
					"businessDescription": {
						Type:        "string",
						Description: "What the business does",
						MinLength:   intPtr(1),
					},
					"companySize": {
						Type:        "string",
						Description: "Employee count bucket",
					},
					"industry": {
						Type:        "string",
						Description: "Industry label",
					},
				},
			},
			"projectDetails": {
				Type:     "object",
				Required: []string{"selectedRecommendations"},
				Properties: map[string]validation.Property{
					"selectedRecommendations": {
						Type:        "array",
						Description: "Titles of the recommendations the visitor selected",
						MinItems:    intPtr(1),
						Items: &validation.Property{
							Type: "string",
						},
					},
					"timeline": {
						Type:        "string",
						Description: "Desired project timeline",
					},
					"budget": {
						Type:        "string",
						Description: "Budget bucket",
					},
					"biggestChallenge": {
						Type:        "string",
						Description: "Biggest current challenge",
					},
				},
			},
			"metadata": {
				Type:     "object",
				Required: []string{"source", "timestamp", "sessionId", "originalRecommendations"},
				Properties: map[string]validation.Property{
					"source": {
						Type:        "string",
						Description: "Submission source tag",
					},
					"timestamp": {
						Type:        "string",
						Description: "ISO timestamp of submission",
					},
					"sessionId": {
						Type:        "string",
						Description: "Session identifier",
					},
					"originalRecommendations": {
						Type:        "array",
						Description: "Original recommendation objects, relayed as-is",
					},
				},
			},
		},
	}
}

func intPtr(i int) *int {
	return &i
}
