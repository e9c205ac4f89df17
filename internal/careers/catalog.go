// Package careers recommends career paths based on the skills and
// experience found in a résumé. Recommendations come from a catalog of
// career definitions; a built-in catalog ships with the package and an
// external JSON catalog can be loaded, falling back to the built-in one when
// the file is missing or invalid.
package careers

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/jonathan/resume-insights/internal/schemas"
	"github.com/jonathan/resume-insights/internal/types"
)

// Career defines one recommendable career path. RequiredSkills are ordered
// by relevance; earlier entries weigh more during matching.
type Career struct {
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	RequiredSkills   []string           `json:"required_skills"`
	PreferredSkills  []string           `json:"preferred_skills,omitempty"`
	SalaryRange      *types.SalaryRange `json:"salary_range,omitempty"`
	GrowthOutlook    string             `json:"growth_outlook,omitempty"`
	Education        []string           `json:"education,omitempty"`
	Certifications   []string           `json:"certifications,omitempty"`
	ExperienceLevels []string           `json:"experience_levels,omitempty"`
	JobMarketDemand  string             `json:"job_market_demand,omitempty"`
}

// catalogSchema validates external catalog files before use.
const catalogSchema = `{
	"type": "object",
	"required": ["careers"],
	"properties": {
		"careers": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["title", "required_skills"],
				"properties": {
					"title": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"required_skills": {"type": "array", "items": {"type": "string"}, "minItems": 1},
					"preferred_skills": {"type": "array", "items": {"type": "string"}},
					"salary_range": {
						"type": "object",
						"required": ["min", "max"],
						"properties": {
							"min": {"type": "integer", "minimum": 0},
							"max": {"type": "integer", "minimum": 0}
						}
					},
					"growth_outlook": {"type": "string"},
					"education": {"type": "array", "items": {"type": "string"}},
					"certifications": {"type": "array", "items": {"type": "string"}},
					"experience_levels": {
						"type": "array",
						"items": {"type": "string", "enum": ["entry", "mid", "senior"]}
					},
					"job_market_demand": {"type": "string"}
				}
			}
		}
	}
}`

type catalogFile struct {
	Careers []Career `json:"careers"`
}

// LoadCatalog reads a career catalog from a JSON file. An empty path, an
// unreadable file, or a file failing schema validation all fall back to the
// built-in catalog; callers always get a usable catalog.
func LoadCatalog(path string) []Career {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("career catalog unreadable, using built-in catalog", "path", path, "error", err)
		return DefaultCatalog()
	}

	if err := schemas.ValidateString(catalogSchema, string(data)); err != nil {
		slog.Warn("career catalog failed validation, using built-in catalog", "path", path, "error", err)
		return DefaultCatalog()
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		slog.Warn("career catalog unmarshal failed, using built-in catalog", "path", path, "error", err)
		return DefaultCatalog()
	}

	normalizeCatalog(file.Careers)
	return file.Careers
}

// normalizeCatalog lowercases skill lists so matching against extracted
// skills is case-insensitive.
func normalizeCatalog(catalog []Career) {
	for i := range catalog {
		for j, s := range catalog[i].RequiredSkills {
			catalog[i].RequiredSkills[j] = strings.ToLower(s)
		}
		for j, s := range catalog[i].PreferredSkills {
			catalog[i].PreferredSkills[j] = strings.ToLower(s)
		}
	}
}

// DefaultCatalog returns the built-in career definitions.
func DefaultCatalog() []Career {
	return []Career{
		{
			Title:            "Software Engineer",
			Description:      "Designs, builds and maintains software systems and applications.",
			RequiredSkills:   []string{"python", "java", "javascript", "sql", "git", "rest"},
			PreferredSkills:  []string{"docker", "kubernetes", "aws", "microservices", "ci/cd"},
			SalaryRange:      &types.SalaryRange{Min: 85000, Max: 160000},
			GrowthOutlook:    "Much faster than average",
			Education:        []string{"Bachelor's in Computer Science or related field"},
			Certifications:   []string{"AWS Certified Developer"},
			ExperienceLevels: []string{"entry", "mid", "senior"},
			JobMarketDemand:  "high",
		},
		{
			Title:            "Data Scientist",
			Description:      "Extracts insight from data using statistics and machine learning.",
			RequiredSkills:   []string{"python", "statistics", "machine learning", "sql", "pandas", "numpy"},
			PreferredSkills:  []string{"tensorflow", "pytorch", "spark", "deep learning", "tableau"},
			SalaryRange:      &types.SalaryRange{Min: 95000, Max: 175000},
			GrowthOutlook:    "Much faster than average",
			Education:        []string{"Master's in Data Science, Statistics, or related field"},
			Certifications:   []string{"TensorFlow Developer Certificate"},
			ExperienceLevels: []string{"mid", "senior"},
			JobMarketDemand:  "high",
		},
		{
			Title:            "DevOps Engineer",
			Description:      "Automates build, deployment and operations of production systems.",
			RequiredSkills:   []string{"linux", "docker", "kubernetes", "ci/cd", "bash", "git"},
			PreferredSkills:  []string{"terraform", "ansible", "aws", "prometheus", "grafana"},
			SalaryRange:      &types.SalaryRange{Min: 90000, Max: 165000},
			GrowthOutlook:    "Much faster than average",
			Education:        []string{"Bachelor's in Computer Science or equivalent experience"},
			Certifications:   []string{"CKA", "AWS Certified DevOps Engineer"},
			ExperienceLevels: []string{"mid", "senior"},
			JobMarketDemand:  "high",
		},
		{
			Title:            "Frontend Developer",
			Description:      "Builds user interfaces for web applications.",
			RequiredSkills:   []string{"javascript", "html", "css", "react", "git"},
			PreferredSkills:  []string{"typescript", "vue", "next.js", "graphql"},
			SalaryRange:      &types.SalaryRange{Min: 75000, Max: 145000},
			GrowthOutlook:    "Faster than average",
			Education:        []string{"Bachelor's degree or bootcamp with strong portfolio"},
			ExperienceLevels: []string{"entry", "mid", "senior"},
			JobMarketDemand:  "medium",
		},
		{
			Title:            "Backend Developer",
			Description:      "Builds server-side services, APIs and data layers.",
			RequiredSkills:   []string{"python", "java", "sql", "rest", "git", "postgresql"},
			PreferredSkills:  []string{"golang", "redis", "kafka", "microservices", "docker"},
			SalaryRange:      &types.SalaryRange{Min: 85000, Max: 155000},
			GrowthOutlook:    "Faster than average",
			Education:        []string{"Bachelor's in Computer Science or related field"},
			ExperienceLevels: []string{"entry", "mid", "senior"},
			JobMarketDemand:  "high",
		},
		{
			Title:            "Machine Learning Engineer",
			Description:      "Productionizes machine learning models at scale.",
			RequiredSkills:   []string{"python", "machine learning", "tensorflow", "pytorch", "sql"},
			PreferredSkills:  []string{"kubernetes", "spark", "airflow", "deep learning", "aws"},
			SalaryRange:      &types.SalaryRange{Min: 110000, Max: 190000},
			GrowthOutlook:    "Much faster than average",
			Education:        []string{"Master's in Computer Science or Machine Learning"},
			ExperienceLevels: []string{"mid", "senior"},
			JobMarketDemand:  "high",
		},
		{
			Title:            "Cloud Solutions Architect",
			Description:      "Designs cloud infrastructure and migration strategies.",
			RequiredSkills:   []string{"aws", "azure", "terraform", "networking", "linux"},
			PreferredSkills:  []string{"kubernetes", "gcp", "serverless", "microservices"},
			SalaryRange:      &types.SalaryRange{Min: 120000, Max: 200000},
			GrowthOutlook:    "Much faster than average",
			Education:        []string{"Bachelor's in Computer Science or related field"},
			Certifications:   []string{"AWS Certified Solutions Architect", "Azure Solutions Architect Expert"},
			ExperienceLevels: []string{"senior"},
			JobMarketDemand:  "high",
		},
		{
			Title:            "Cybersecurity Analyst",
			Description:      "Protects systems and data from security threats.",
			RequiredSkills:   []string{"network security", "linux", "siem", "penetration testing"},
			PreferredSkills:  []string{"python", "cryptography", "aws", "bash"},
			SalaryRange:      &types.SalaryRange{Min: 80000, Max: 150000},
			GrowthOutlook:    "Much faster than average",
			Education:        []string{"Bachelor's in Cybersecurity or related field"},
			Certifications:   []string{"CISSP", "CompTIA Security+"},
			ExperienceLevels: []string{"entry", "mid", "senior"},
			JobMarketDemand:  "high",
		},
	}
}

// FindCareer locates a catalog entry by title, case-insensitively. Exact
// title matches win over substring matches.
func FindCareer(catalog []Career, title string) (Career, bool) {
	want := strings.ToLower(strings.TrimSpace(title))
	if want == "" {
		return Career{}, false
	}
	for _, c := range catalog {
		if strings.ToLower(c.Title) == want {
			return c, true
		}
	}
	for _, c := range catalog {
		if strings.Contains(strings.ToLower(c.Title), want) {
			return c, true
		}
	}
	return Career{}, false
}
