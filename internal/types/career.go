package types

// SalaryRange is an annual salary band in USD.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CareerSuggestion is one recommended career path. MatchScore is a
// percentage in [0, 100]. Every field is populated at construction; optional
// data is carried as zero values or nil, never attached dynamically.
type CareerSuggestion struct {
	Title                   string       `json:"title"`
	Description             string       `json:"description,omitempty"`
	MatchScore              float64      `json:"match_score"`
	MatchingSkills          []string     `json:"matching_skills"`
	MatchingPreferredSkills []string     `json:"matching_preferred_skills,omitempty"`
	MissingSkills           []string     `json:"missing_skills"`
	SalaryRange             *SalaryRange `json:"salary_range,omitempty"`
	GrowthOutlook           string       `json:"growth_outlook,omitempty"`
	Education               []string     `json:"education,omitempty"`
	Certifications          []string     `json:"certifications,omitempty"`
	ExperienceFit           string       `json:"experience_fit,omitempty"`
	JobMarketDemand         string       `json:"job_market_demand,omitempty"`
}

// SkillPriority groups missing skills for a target role by urgency.
type SkillPriority struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// DevelopmentPlan lays out how to close the gap to a target role.
// MarketReadiness is a percentage in [0, 100].
type DevelopmentPlan struct {
	TargetRole      string        `json:"target_role"`
	CurrentSkills   []string      `json:"current_skills"`
	Priorities      SkillPriority `json:"priorities"`
	MarketReadiness float64       `json:"market_readiness"`
	Timeline        string        `json:"timeline"`
	NextSteps       []string      `json:"next_steps"`
}
