package domain

import (
	"regexp"
	"strings"
	"time"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExerciseSlug normalizes an exercise name into the key the progress
// ledger is indexed by: lowercased, whitespace runs collapsed to "_".
func ExerciseSlug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
}

// ExerciseTitle reverses ExerciseSlug for display: "bench_press" becomes
// "Bench Press".
func ExerciseTitle(slug string) string {
	words := strings.Split(slug, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ProgressEntry is one recorded performance of an exercise in the
// single-client progress ledger. TotalVolume is weight x reps x sets,
// computed once at record time.
type ProgressEntry struct {
	Date        time.Time `json:"date"`
	Weight      float64   `json:"weight"`
	Reps        int       `json:"reps"`
	Sets        int       `json:"sets"`
	TotalVolume float64   `json:"totalVolume"`
}

// NewProgressEntry builds a progress entry dated now.
func NewProgressEntry(weight float64, reps, sets int) ProgressEntry {
	return ProgressEntry{
		Date:        time.Now().UTC(),
		Weight:      weight,
		Reps:        reps,
		Sets:        sets,
		TotalVolume: weight * float64(reps) * float64(sets),
	}
}
