package extraction

import (
	"sort"
	"strings"
)

// Skills scans the whole document against the skill vocabulary and returns
// the lowercase skills found, ordered by first appearance in the text.
func Skills(text string) []string {
	lower := strings.ToLower(text)

	type hit struct {
		skill string
		pos   int
	}
	var hits []hit
	for _, skill := range SkillVocabulary {
		if i := IndexTerm(lower, skill); i >= 0 {
			hits = append(hits, hit{skill: skill, pos: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	skills := make([]string, 0, len(hits))
	for _, h := range hits {
		skills = append(skills, h.skill)
	}
	return skills
}
