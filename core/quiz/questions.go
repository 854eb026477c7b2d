package quiz

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Difficulty buckets for generated questions.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// QuestionType identifies the interaction style of a question.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	FillBlank      QuestionType = "fill-blank"
)

// Question is one generated quiz question. Field names and shapes are
// part of the downstream JSON contract.
type Question struct {
	ID             string       `json:"id"`
	Question       string       `json:"question"`
	Type           QuestionType `json:"type"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswer  string       `json:"correctAnswer"`
	Explanation    string       `json:"explanation"`
	VerseReference string       `json:"verseReference"`
	Difficulty     Difficulty   `json:"difficulty"`
}

// shuffled returns a copy of items in rng order (Fisher-Yates).
func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := append([]T(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// pickDistractors draws count wrong answers from pool, excluding the
// correct one.
func pickDistractors(rng *rand.Rand, correct string, pool []string, count int) []string {
	var filtered []string
	for _, x := range pool {
		if x != correct {
			filtered = append(filtered, x)
		}
	}
	filtered = shuffled(rng, filtered)
	if len(filtered) > count {
		filtered = filtered[:count]
	}
	return filtered
}

func conceptQuestion(rng *rand.Rand, cmd Commandment, all []Commandment, id string, diff Difficulty) Question {
	pool := make([]string, len(all))
	for i, c := range all {
		pool[i] = c.Concept
	}
	options := shuffled(rng, append([]string{cmd.Concept}, pickDistractors(rng, cmd.Concept, pool, 3)...))
	return Question{
		ID:             id,
		Question:       fmt.Sprintf("According to %s, which of the following is a biblical commandment?", FormatRef(cmd.ReferenceID)),
		Type:           MultipleChoice,
		Options:        options,
		CorrectAnswer:  cmd.Concept,
		Explanation:    fmt.Sprintf("Commandment #%d: %q is found in %s.", cmd.Number, cmd.Concept, FormatRef(cmd.ReferenceID)),
		VerseReference: FormatRef(cmd.ReferenceID),
		Difficulty:     diff,
	}
}

func polarityQuestion(cmd Commandment, id string, diff Difficulty) Question {
	isPositive := cmd.Polarity == Positive
	answer := "False"
	kind := "negative"
	phrase := "thou shalt not"
	if isPositive {
		answer = "True"
		kind = "positive"
		phrase = "thou shalt"
	}
	return Question{
		ID:             id,
		Question:       fmt.Sprintf("%q is a positive commandment (something you should do).", cmd.Concept),
		Type:           TrueFalse,
		Options:        []string{"True", "False"},
		CorrectAnswer:  answer,
		Explanation:    fmt.Sprintf("%q is a %s commandment (#%d), a %q command from %s.", cmd.Concept, kind, cmd.Number, phrase, FormatRef(cmd.ReferenceID)),
		VerseReference: FormatRef(cmd.ReferenceID),
		Difficulty:     diff,
	}
}

func bookQuestion(rng *rand.Rand, cmd Commandment, all []Commandment, id string, diff Difficulty) Question {
	correct := bookDisplay(cmd)
	var pool []string
	seen := make(map[string]bool)
	for _, c := range all {
		b := bookDisplay(c)
		if !seen[b] {
			seen[b] = true
			pool = append(pool, b)
		}
	}
	options := shuffled(rng, append([]string{correct}, pickDistractors(rng, correct, pool, 3)...))
	return Question{
		ID:             id,
		Question:       fmt.Sprintf("In which book of the Bible is the commandment %q found?", cmd.Concept),
		Type:           MultipleChoice,
		Options:        options,
		CorrectAnswer:  correct,
		Explanation:    fmt.Sprintf("%q (Commandment #%d) is found in %s.", cmd.Concept, cmd.Number, FormatRef(cmd.ReferenceID)),
		VerseReference: FormatRef(cmd.ReferenceID),
		Difficulty:     diff,
	}
}

// bookDisplay returns the spelled-out book name a commandment's
// reference points at.
func bookDisplay(cmd Commandment) string {
	formatted := FormatRef(cmd.ReferenceID)
	if idx := strings.LastIndex(formatted, " "); idx > 0 {
		return formatted[:idx]
	}
	return cmd.Book
}

func categoryQuestion(rng *rand.Rand, cmd Commandment, all []Commandment, id string, diff Difficulty) Question {
	var pool []string
	seen := make(map[string]bool)
	for _, c := range all {
		if !seen[c.Category] {
			seen[c.Category] = true
			pool = append(pool, c.Category)
		}
	}
	options := shuffled(rng, append([]string{cmd.Category}, pickDistractors(rng, cmd.Category, pool, 3)...))
	return Question{
		ID:             id,
		Question:       fmt.Sprintf("The commandment %q falls under which category?", cmd.Concept),
		Type:           MultipleChoice,
		Options:        options,
		CorrectAnswer:  cmd.Category,
		Explanation:    fmt.Sprintf("%q (#%d) belongs to the %q category of biblical commandments.", cmd.Concept, cmd.Number, cmd.Category),
		VerseReference: FormatRef(cmd.ReferenceID),
		Difficulty:     diff,
	}
}

func numberQuestion(rng *rand.Rand, cmd Commandment, id string, diff Difficulty) Question {
	correct := cmd.Number
	var distractors []int
	for len(distractors) < 3 {
		d := correct + rng.Intn(40) - 20
		if d > 0 && d <= 613 && d != correct && !containsInt(distractors, d) {
			distractors = append(distractors, d)
		}
	}
	options := shuffled(rng, append([]int{correct}, distractors...))
	return Question{
		ID:             id,
		Question:       fmt.Sprintf("%q is traditionally listed as which commandment number?", cmd.Concept),
		Type:           MultipleChoice,
		Options:        intStrings(options),
		CorrectAnswer:  strconv.Itoa(correct),
		Explanation:    fmt.Sprintf("%q is Commandment #%d, found in %s.", cmd.Concept, cmd.Number, FormatRef(cmd.ReferenceID)),
		VerseReference: FormatRef(cmd.ReferenceID),
		Difficulty:     diff,
	}
}

func countQuestion(rng *rand.Rand, pool []Commandment, subject, id string, diff Difficulty) Question {
	positive, negative := 0, 0
	for _, c := range pool {
		if c.Polarity == Positive {
			positive++
		} else {
			negative++
		}
	}
	isPositive := rng.Float64() > 0.5
	correct := negative
	phrase := `negative ("thou shalt not")`
	if isPositive {
		correct = positive
		phrase = `positive ("thou shalt")`
	}
	var distractors []int
	for len(distractors) < 3 {
		d := correct + rng.Intn(60) - 30
		if d > 0 && d != correct && !containsInt(distractors, d) {
			distractors = append(distractors, d)
		}
	}
	options := shuffled(rng, append([]int{correct}, distractors...))
	verseRef := ""
	if len(pool) > 0 {
		verseRef = FormatRef(pool[0].ReferenceID)
	}
	return Question{
		ID:             id,
		Question:       fmt.Sprintf("How many %s commandments are there in %s?", phrase, subject),
		Type:           MultipleChoice,
		Options:        intStrings(options),
		CorrectAnswer:  strconv.Itoa(correct),
		Explanation:    fmt.Sprintf("%s contains %d positive and %d negative commandments, for a total of %d.", subject, positive, negative, len(pool)),
		VerseReference: verseRef,
		Difficulty:     diff,
	}
}

var nonWordRe = regexp.MustCompile(`[^a-zA-Z'-]`)

func fillBlankQuestion(cmd Commandment, id string, diff Difficulty) Question {
	words := strings.Fields(cmd.Concept)
	keyIdx := len(words) - 1
	if len(words) > 3 {
		keyIdx = 3
	}
	keyWord := nonWordRe.ReplaceAllString(words[keyIdx], "")

	blanked := make([]string, len(words))
	for i, w := range words {
		if i == keyIdx {
			blanked[i] = "____"
		} else {
			blanked[i] = w
		}
	}
	return Question{
		ID:             id,
		Question:       fmt.Sprintf("Fill in the blank: Commandment #%d instructs to %q", cmd.Number, strings.Join(blanked, " ")),
		Type:           FillBlank,
		Options:        []string{keyWord},
		CorrectAnswer:  keyWord,
		Explanation:    fmt.Sprintf("The full commandment is: %q (%s).", cmd.Concept, FormatRef(cmd.ReferenceID)),
		VerseReference: FormatRef(cmd.ReferenceID),
		Difficulty:     diff,
	}
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

func intStrings(list []int) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = strconv.Itoa(n)
	}
	return out
}
