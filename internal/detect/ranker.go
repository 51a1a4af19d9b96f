package detect

import (
	"sort"
	"strings"

	"yuki/internal/domain/entity"
)

// rankStopwords are query words carrying no element-matching signal.
var rankStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "to": true, "in": true,
	"on": true, "of": true, "and": true, "for": true, "with": true,
	"this": true, "that": true, "my": true, "me": true, "it": true,
}

// QueryKeywords extracts the lowercase content words of a task
// description.
func QueryKeywords(query string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, ".,!?\"'()")
		if len(w) < 3 || rankStopwords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// RankByIntent re-orders interactive and informative elements for
// complex, open-ended tasks so that the most task-relevant elements lead
// the oracle prompt. The sort is stable: elements with equal scores keep
// their discovery order.
func RankByIntent(tree entity.TreeState, query string) entity.TreeState {
	keywords := QueryKeywords(query)
	if len(keywords) == 0 {
		return tree
	}

	ranked := tree
	ranked.Interactive = append([]entity.InteractiveElement(nil), tree.Interactive...)
	sort.SliceStable(ranked.Interactive, func(i, j int) bool {
		return interactiveScore(ranked.Interactive[i], keywords) > interactiveScore(ranked.Interactive[j], keywords)
	})

	ranked.Informative = append([]entity.TextElement(nil), tree.Informative...)
	sort.SliceStable(ranked.Informative, func(i, j int) bool {
		return textScore(ranked.Informative[i], keywords) > textScore(ranked.Informative[j], keywords)
	})
	return ranked
}

func interactiveScore(el entity.InteractiveElement, keywords []string) int {
	score := 0
	name := strings.ToLower(el.Name)
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			score += 2
		}
		if strings.Contains(strings.ToLower(el.AppName), kw) {
			score++
		}
	}
	// Edit fields lead for form-like tasks: they are the usual first
	// touch point.
	if el.ControlType == "EditControl" || el.ControlType == "ComboBoxControl" {
		score++
	}
	return score
}

func textScore(el entity.TextElement, keywords []string) int {
	score := 0
	name := strings.ToLower(el.Name)
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			score++
		}
	}
	return score
}
