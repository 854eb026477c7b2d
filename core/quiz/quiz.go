package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/logging"
)

// DefaultSeed keeps repeated builds byte-identical unless the caller
// asks for a different shuffle.
const DefaultSeed int64 = 613

// Quiz is one generated quiz file.
type Quiz struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Type           string     `json:"type"`
	Questions      []Question `json:"questions"`
	Difficulty     Difficulty `json:"difficulty"`
	IsBookQuiz     bool       `json:"isBookQuiz"`
	Slug           string     `json:"slug"`
	Tags           []string   `json:"tags"`
	TotalQuestions int        `json:"totalQuestions"`
	EstimatedTime  int        `json:"estimatedTime"`
}

// Build assembles a quiz from the commandment pool. The question mix
// is roughly 70% multiple-choice, 20% true-false, 10% fill-blank, and
// difficulty ramps 40% easy, 40% medium, 20% hard.
func Build(rng *rand.Rand, pool, all []Commandment, quizID, title, description, slug string, tags []string, questionCount int) Quiz {
	mcCount := int(float64(questionCount)*0.7 + 0.5)
	tfCount := int(float64(questionCount)*0.2 + 0.5)
	fbCount := questionCount - mcCount - tfCount

	difficulties := make([]Difficulty, questionCount)
	easyEnd := int(float64(questionCount)*0.4 + 0.5)
	medEnd := int(float64(questionCount)*0.8 + 0.5)
	for i := range difficulties {
		switch {
		case i < easyEnd:
			difficulties[i] = Easy
		case i < medEnd:
			difficulties[i] = Medium
		default:
			difficulties[i] = Hard
		}
	}

	used := make(map[int]bool)
	pickCmd := func() Commandment {
		var available []Commandment
		for _, c := range pool {
			if !used[c.Number] {
				available = append(available, c)
			}
		}
		var cmd Commandment
		if len(available) > 0 {
			cmd = available[rng.Intn(len(available))]
		} else {
			cmd = pool[rng.Intn(len(pool))]
		}
		used[cmd.Number] = true
		return cmd
	}

	subject := title
	if idx := strings.Index(title, " - "); idx >= 0 {
		subject = title[:idx]
	}

	var questions []Question
	// Rotate through the multiple-choice generators, substituting a
	// count question every fifth slot when the pool is big enough.
	for i := 0; i < mcCount; i++ {
		id := fmt.Sprintf("%s-%d", quizID, i+1)
		diff := difficulties[i]
		if i%5 == 4 && len(pool) > 5 {
			questions = append(questions, countQuestion(rng, pool, subject, id, diff))
			continue
		}
		cmd := pickCmd()
		switch i % 4 {
		case 0:
			questions = append(questions, conceptQuestion(rng, cmd, all, id, diff))
		case 1:
			questions = append(questions, bookQuestion(rng, cmd, all, id, diff))
		case 2:
			questions = append(questions, categoryQuestion(rng, cmd, all, id, diff))
		default:
			questions = append(questions, numberQuestion(rng, cmd, id, diff))
		}
	}
	for i := 0; i < tfCount; i++ {
		cmd := pickCmd()
		id := fmt.Sprintf("%s-%d", quizID, mcCount+i+1)
		questions = append(questions, polarityQuestion(cmd, id, difficulties[mcCount+i]))
	}
	for i := 0; i < fbCount; i++ {
		cmd := pickCmd()
		id := fmt.Sprintf("%s-%d", quizID, mcCount+tfCount+i+1)
		questions = append(questions, fillBlankQuestion(cmd, id, difficulties[mcCount+tfCount+i]))
	}

	return Quiz{
		ID:             quizID,
		Title:          title,
		Description:    description,
		Type:           "commandment",
		Questions:      shuffled(rng, questions),
		Difficulty:     Medium,
		IsBookQuiz:     false,
		Slug:           slug,
		Tags:           tags,
		TotalQuestions: len(questions),
		EstimatedTime:  (len(questions)*12 + 9) / 10,
	}
}

type categoryConfig struct {
	Category string
	Slug     string
	Name     string
}

var categoryConfigs = []categoryConfig{
	{"Sacrifices and Offerings", "sacrifices-commandments-quiz", "Sacrifices & Offerings"},
	{"Courts, Crimes, and Punishments", "justice-commandments-quiz", "Justice & Courts"},
	{"Appointed Times", "appointed-times-commandments-quiz", "Appointed Times & Holy Days"},
	{"Idolatry", "idolatry-commandments-quiz", "Idolatry"},
	{"Food", "food-commandments-quiz", "Biblical Food Laws"},
	{"Marriage and Family", "marriage-commandments-quiz", "Marriage & Family"},
	{"Levites & Priests", "priests-commandments-quiz", "Priests & Levites"},
	{"Forbidden Sexual Relationships", "purity-commandments-quiz", "Sexual Purity"},
	{"Love", "love-commandments-quiz", "Love"},
	{"Providing for the Poor", "charity-commandments-quiz", "Charity & Caring for the Poor"},
	{"War and Battles", "war-commandments-quiz", "War & Battles"},
	{"Temple and Sacred Objects", "temple-commandments-quiz", "The Temple"},
	{"G-d", "god-commandments-quiz", "Knowing God"},
	{"Morality", "morality-commandments-quiz", "Morality & Ethics"},
}

// minCategoryPool is the smallest category that still makes a workable
// quiz; smaller categories are skipped.
const minCategoryPool = 8

// GenerateAll builds the full set of commandment quizzes: the Ten
// Commandments, the complete 613, positive versus negative, and one
// quiz per major category. Output is keyed by file slug.
func GenerateAll(rng *rand.Rand, all []Commandment) []Quiz {
	log := logging.GetLogger()

	if len(all) == 0 {
		log.Warn("no commandments parsed, skipping quiz generation")
		return nil
	}

	var ten []Commandment
	for _, c := range all {
		if c.Book == "exodus" && c.Chapter == 20 {
			ten = append(ten, c)
		}
	}

	var quizzes []Quiz
	if len(ten) > 0 {
		quizzes = append(quizzes, Build(rng, ten, all,
			"ten-commandments-quiz",
			"The Ten Commandments Quiz - Test Your Knowledge of Exodus 20",
			"How well do you know the Ten Commandments? Test your knowledge of the foundational commandments given by God to Moses at Mount Sinai in Exodus 20. Covers all ten commandments with their biblical context and meaning.",
			"ten-commandments-quiz",
			[]string{"ten commandments", "exodus 20", "mount sinai", "moses", "gods law", "bible commandments"},
			25))
	} else {
		log.Warn("no Exodus 20 commandments found, skipping ten commandments quiz")
	}

	quizzes = append(quizzes,
		Build(rng, all, all,
			"613-commandments-quiz",
			"The 613 Commandments Quiz - Complete Biblical Law Knowledge Test",
			"Test your knowledge of all 613 biblical commandments (mitzvot) from the Torah. 50 questions covering positive and negative commandments from Genesis through Deuteronomy, spanning categories from worship to food laws to justice.",
			"613-commandments-quiz",
			[]string{"613 commandments", "mitzvot", "torah commandments", "biblical law", "gods commandments", "bible quiz"},
			50),
		Build(rng, all, all,
			"positive-negative-commandments-quiz",
			"Positive vs Negative Commandments Quiz - Thou Shalt vs Thou Shalt Not",
			`Can you tell the difference between a positive commandment ("thou shalt") and a negative commandment ("thou shalt not")? Test your knowledge of the 248 positive and 365 negative commandments in the Bible.`,
			"positive-negative-commandments-quiz",
			[]string{"positive commandments", "negative commandments", "thou shalt", "thou shalt not", "bible quiz"},
			25),
	)

	byCategory := make(map[string][]Commandment)
	for _, c := range all {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	for _, cfg := range categoryConfigs {
		pool := byCategory[cfg.Category]
		if len(pool) < minCategoryPool {
			log.Info("skipping category quiz", "category", cfg.Category, "commandments", len(pool))
			continue
		}

		qCount := len(pool)
		if qCount < 15 {
			qCount = 15
		}
		if qCount > 25 {
			qCount = 25
		}
		positive := 0
		for _, c := range pool {
			if c.Polarity == Positive {
				positive++
			}
		}
		quizzes = append(quizzes, Build(rng, pool, all,
			cfg.Slug,
			fmt.Sprintf("%s Commandments Quiz - Biblical Commands About %s", cfg.Name, cfg.Name),
			fmt.Sprintf("Test your knowledge of the %d biblical commandments related to %s. Covers %d positive and %d negative commandments from the Torah.",
				len(pool), strings.ToLower(cfg.Name), positive, len(pool)-positive),
			cfg.Slug,
			[]string{strings.ToLower(cfg.Name), "commandments", "bible quiz", "torah", "biblical law"},
			qCount))
	}

	return quizzes
}

// NewRand returns the deterministic source quiz generation uses.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
