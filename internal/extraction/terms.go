// Package extraction pulls structured entities out of normalized résumé
// text: contact details, skills, work experience and education. Extractors
// are independent; a failure in one yields an empty default for that entity
// and never aborts the others.
package extraction

import "strings"

// ActionVerbs are the verbs treated as strong openers for achievement
// bullets. Matching is prefix-based: "developed" also covers "developer"
// style inflections of the same stem.
var ActionVerbs = []string{
	"achieved", "improved", "trained", "managed", "created", "resolved",
	"volunteered", "influenced", "increased", "decreased", "researched",
	"authored", "organized", "mastered", "developed", "designed",
	"implemented", "launched", "built", "led", "delivered", "optimized",
	"reduced", "streamlined", "automated", "spearheaded", "negotiated",
	"mentored", "coordinated", "architected", "deployed", "migrated",
	"refactored", "scaled", "analyzed", "established", "initiated",
}

// SkillVocabulary is the recognition catalog for skill extraction, grouped
// loosely from concrete technologies to methodologies. All entries are
// lowercase.
var SkillVocabulary = []string{
	// languages
	"python", "java", "javascript", "typescript", "c++", "c#", "golang",
	"rust", "ruby", "php", "swift", "kotlin", "scala", "matlab", "perl",
	"sql", "bash",
	// web and frameworks
	"html", "css", "react", "angular", "vue", "node.js", "express",
	"django", "flask", "fastapi", "spring", "rails", ".net", "jquery",
	"bootstrap", "next.js", "graphql", "rest",
	// data and ML
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
	"spark", "hadoop", "kafka", "airflow", "tableau", "power bi", "excel",
	"machine learning", "deep learning", "nlp", "computer vision",
	"data analysis", "data visualization", "statistics", "etl",
	// databases
	"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite",
	"elasticsearch", "cassandra", "dynamodb",
	// cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "git", "ci/cd", "linux", "microservices", "serverless",
	"prometheus", "grafana", "networking",
	// security
	"penetration testing", "network security", "cryptography", "siem",
	// methodologies and soft skills
	"agile", "scrum", "kanban", "jira", "tdd", "leadership",
	"communication", "project management", "problem solving", "teamwork",
	"stakeholder management",
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// IndexTerm finds the first occurrence of term in lower-cased text with word
// boundaries on both sides. Boundaries are only enforced where the term edge
// is itself a word character, so terms like "c++" or ".net" match next to
// punctuation. Returns -1 when absent.
func IndexTerm(textLower, term string) int {
	from := 0
	for {
		i := strings.Index(textLower[from:], term)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(term)

		leftOK := i == 0 || !isWordByte(term[0]) || !isWordByte(textLower[i-1])
		rightOK := end == len(textLower) || !isWordByte(term[len(term)-1]) || !isWordByte(textLower[end])
		if leftOK && rightOK {
			return i
		}
		from = i + 1
	}
}

// CountTerm counts boundary-respecting occurrences of term in lower-cased
// text.
func CountTerm(textLower, term string) int {
	n, from := 0, 0
	for {
		i := IndexTerm(textLower[from:], term)
		if i < 0 {
			return n
		}
		n++
		from += i + len(term)
		if from >= len(textLower) {
			return n
		}
	}
}
