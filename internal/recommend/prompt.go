package recommend

import (
	"fmt"
	"strings"
)

// Categories is the full taxonomy offered to the model. Not enforced at
// validation time; any non-empty category string is retained.
var Categories = []string{
	"Customer Service",
	"Marketing",
	"Operations",
	"Analytics",
	"Automation",
	"Content Creation",
	"Sales",
	"Finance",
	"HR & Hiring",
	"Legal & Compliance",
	"Productivity",
	"E-commerce",
	"Customer Insights",
	"IT & Security",
}

// CompactCategories is the reduced taxonomy used by the compact template.
var CompactCategories = []string{
	"Customer Service",
	"Marketing",
	"Operations",
	"Analytics",
	"Automation",
	"Content Creation",
}

// Difficulties are the three levels the model is asked to choose from.
var Difficulties = []string{"Easy", "Medium", "Advanced"}

// Template describes one prompt variant. Count bounds, category taxonomy and
// whether suggestedTools is a mandatory output field vary per template.
type Template struct {
	Name         string
	MinCount     int
	MaxCount     int
	MaxTokens    int
	Categories   []string
	RequireTools bool
}

var (
	// TemplateBasic drives free-text requests.
	TemplateBasic = Template{
		Name:       "basic",
		MinCount:   3,
		MaxCount:   4,
		MaxTokens:  1500,
		Categories: Categories,
	}

	// TemplateAdvanced drives structured-form requests.
	TemplateAdvanced = Template{
		Name:       "advanced",
		MinCount:   4,
		MaxCount:   5,
		MaxTokens:  2000,
		Categories: Categories,
	}

	// TemplateCompact is the earlier variant with the reduced taxonomy and a
	// mandatory suggestedTools field.
	TemplateCompact = Template{
		Name:         "compact",
		MinCount:     3,
		MaxCount:     4,
		MaxTokens:    1500,
		Categories:   CompactCategories,
		RequireTools: true,
	}
)

// RequiredFields returns the output fields an element must carry to survive
// validation under this template.
func (t Template) RequiredFields() []string {
	fields := []string{"title", "description", "category", "difficulty", "estimatedCost", "timeToImplement"}
	if t.RequireTools {
		fields = append(fields, "suggestedTools")
	}
	return fields
}

const systemPrompt = "You are a helpful AI business consultant focused on practical, implementable AI solutions and automation ideas for small businesses. For phone-based businesses, always prioritize chatbot and voice agent recommendations. Always respond with valid JSON only.  AI use cases are specific AI implementations that would benefit the business, while AI automation ideas are ideas for automating business processes."

// phoneRule is embedded in every user prompt. It is a prompt-level soft
// constraint; nothing downstream verifies the model honored it.
const phoneRule = "- IMPORTANT: If the business takes phone calls, customer service calls, appointments, or handles phone-based interactions, ALWAYS prioritize recommending both: (1) A chatbot for website/messaging support, and (2) A voice agent/AI phone system that can handle calls 24/7 outside business hours"

// Build renders the system and user instructions for a request. A nil
// profile produces the free-text variant; a non-nil profile produces the
// structured variant that embeds the full business profile.
func (t Template) Build(description string, profile *BusinessProfile) (system, user string) {
	if profile != nil {
		return systemPrompt, t.buildAdvancedPrompt(description, profile)
	}
	return systemPrompt, t.buildBasicPrompt(description)
}

func (t Template) buildBasicPrompt(description string) string {
	var b strings.Builder

	b.WriteString("You are an AI business consultant specializing in practical AI implementations for small businesses like data entry, lead generation, marketing, social media, customer service, etc.\n\n")
	fmt.Fprintf(&b, "Business Description: %q\n\n", description)
	fmt.Fprintf(&b, "Based on this business description, provide exactly %d-%d specific, actionable AI use case or AI automation ideas that would genuinely benefit this particular business.  AI use cases are specific AI implementations that would benefit the business, while AI automation ideas are ideas for automating business processes.\n\n", t.MinCount, t.MaxCount)
	b.WriteString(t.fieldInstructions())
	b.WriteString("\nFocus on:\n")
	b.WriteString("- Solutions that are actually implementable with current technology and are not too complex for small businesses to implement.\n")
	b.WriteString("- Clear, measurable business value for THIS specific business type.\n")
	b.WriteString("- Appropriate for small business budgets ($20-500/month range)\n")
	b.WriteString("- Industry-specific recommendations, not generic suggestions.\n")
	b.WriteString("- Prioritize Easy and Medium difficulty solutions\n")
	b.WriteString(phoneRule)
	b.WriteString("\n\n")
	b.WriteString(t.outputInstruction())

	return b.String()
}

func (t Template) buildAdvancedPrompt(description string, p *BusinessProfile) string {
	var b strings.Builder

	b.WriteString("You are an AI business consultant specializing in practical AI implementations for small businesses.\n\n")
	b.WriteString("Business Information:\n")
	fmt.Fprintf(&b, "- Business Name: %s\n", p.BusinessName)
	fmt.Fprintf(&b, "- Type: %s\n", p.BusinessType)
	fmt.Fprintf(&b, "- Description: %s\n", description)
	fmt.Fprintf(&b, "- Company Size: %s employees\n", p.CompanySize)
	fmt.Fprintf(&b, "- Monthly Revenue: %s\n", p.MonthlyRevenue)
	fmt.Fprintf(&b, "- Years in Business: %s\n", p.YearsInBusiness)
	fmt.Fprintf(&b, "- Primary Goals: %s\n", strings.Join(p.PrimaryGoals, ", "))
	fmt.Fprintf(&b, "- Current Challenges: %s\n", strings.Join(p.CurrentChallenges, ", "))
	fmt.Fprintf(&b, "- Technical Comfort Level: %s\n", p.TechComfort)
	fmt.Fprintf(&b, "- Budget: %s/month for AI tools\n", p.Budget)
	fmt.Fprintf(&b, "- Implementation Timeline: %s\n", p.Timeline)
	fmt.Fprintf(&b, "- Focus Areas: %s\n", strings.Join(p.FocusAreas, ", "))
	if p.AdditionalInfo != "" {
		fmt.Fprintf(&b, "- Additional Info: %s\n", p.AdditionalInfo)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Based on this detailed business profile, provide exactly %d-%d highly specific, actionable AI use case recommendations or automation ideas that would genuinely benefit this particular business.  AI use cases are specific AI implementations that would benefit the business like chatbots, customer service, etc., while AI automation ideas are ideas for automating business processes like data entry, customer service, etc.\n\n", t.MinCount, t.MaxCount)
	b.WriteString("Focus on:\n")
	b.WriteString("- Solutions that directly address their stated goals and challenges.\n")
	fmt.Fprintf(&b, "- Match their technical comfort level (%s)\n", p.TechComfort)
	fmt.Fprintf(&b, "- Stay within their budget range (%s/month)\n", p.Budget)
	fmt.Fprintf(&b, "- Align with their timeline (%s)\n", p.Timeline)
	fmt.Fprintf(&b, "- Prioritize their selected focus areas: %s\n", strings.Join(p.FocusAreas, ", "))
	fmt.Fprintf(&b, "- Consider their business type (%s) and size (%s)\n", p.BusinessType, p.CompanySize)
	b.WriteString(phoneRule)
	b.WriteString("\n\n")
	b.WriteString(t.fieldInstructions())
	b.WriteString("\n")
	b.WriteString(t.outputInstruction())

	return b.String()
}

// fieldInstructions renders the per-field rules, parameterized by the
// template's category taxonomy and tools requirement.
func (t Template) fieldInstructions() string {
	var b strings.Builder

	b.WriteString("For each recommendation, provide:\n")
	b.WriteString("1. A clear, descriptive title (max 6 words)\n")
	b.WriteString("2. A practical description of how it works and benefits THIS specific business (2-3 sentences)\n")
	fmt.Fprintf(&b, "3. A category from: %s\n", joinCategories(t.Categories))
	fmt.Fprintf(&b, "4. Difficulty level: %s\n", joinCategories(Difficulties))
	b.WriteString("5. Monthly cost estimate in format \"$X-Y/month\" (be realistic for small businesses)\n")
	b.WriteString("6. Time to implement in format \"X-Y weeks\"\n")
	if t.RequireTools {
		b.WriteString("7. A list of 2-3 suggested tools or vendors that could implement it\n")
	}

	return b.String()
}

func (t Template) outputInstruction() string {
	fields := strings.Join(t.RequiredFields(), ", ")
	return fmt.Sprintf("Return ONLY a valid JSON array with no additional text or formatting. Each object should have exactly these fields: %s.", fields)
}

// joinCategories renders a list as "A, B, or C".
func joinCategories(items []string) string {
	if len(items) <= 1 {
		return strings.Join(items, "")
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
