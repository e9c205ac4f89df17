package matching

import (
	"sort"
	"strings"
)

// phrase scoring weights: word frequency dominates, early position and
// reasonable length break ties.
const (
	phraseFreqWeight   = 0.5
	phrasePosWeight    = 0.3
	phraseLenWeight    = 0.2
	phraseTargetLength = 10
)

// KeyPhrases extracts the topN most representative sentences from text,
// ranked by average word frequency, position, and length.
func KeyPhrases(text string, topN int) []string {
	if topN <= 0 {
		return nil
	}

	sents := sentenceSplitRe.Split(text, -1)

	freq := make(map[string]int)
	maxFreq := 0
	sentWords := make([][]string, len(sents))
	for i, s := range sents {
		for _, w := range wordRe.FindAllString(strings.ToLower(s), -1) {
			if len(w) < 3 || stopwords[w] {
				continue
			}
			sentWords[i] = append(sentWords[i], w)
			freq[w]++
			if freq[w] > maxFreq {
				maxFreq = freq[w]
			}
		}
	}
	if maxFreq == 0 {
		return nil
	}

	type scored struct {
		text  string
		score float64
	}
	var ranked []scored
	for i, s := range sents {
		words := sentWords[i]
		if len(words) == 0 {
			continue
		}

		sum := 0
		for _, w := range words {
			sum += freq[w]
		}
		freqScore := float64(sum) / float64(len(words)) / float64(maxFreq)
		posScore := 1.0 / float64(i+1)
		lenScore := float64(len(words)) / phraseTargetLength
		if lenScore > 1 {
			lenScore = 1
		}

		ranked = append(ranked, scored{
			text:  strings.TrimSpace(s),
			score: phraseFreqWeight*freqScore + phrasePosWeight*posScore + phraseLenWeight*lenScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	phrases := make([]string, len(ranked))
	for i, r := range ranked {
		phrases[i] = r.text
	}
	return phrases
}
