package strength

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/passcheck/passcheck/internal/model"
	"github.com/passcheck/passcheck/internal/repository"
)

// punctuation is the fixed ASCII set that defines the symbol class.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// lengthThresholds are the cumulative length bonus steps, one point each.
var lengthThresholds = [...]int{8, 12, 16, 20}

type Evaluator interface {
	Evaluate(password string) model.EvaluationResult
}

// Service evaluates password strength against an optional common-password
// set. The set is either supplied up front or loaded lazily, at most once,
// from the wordlist repository.
type Service struct {
	repo     repository.WordlistRepository
	common   map[string]struct{}
	loadOnce sync.Once
}

func NewService(repo repository.WordlistRepository) *Service {
	return &Service{repo: repo}
}

// NewServiceWithSet builds an evaluator over a caller-owned common-password
// set, skipping the repository load. The set must not be mutated while the
// service is in use.
func NewServiceWithSet(common map[string]struct{}) *Service {
	return &Service{common: common}
}

// Classify scans the password once and reports which character classes it
// contains, plus how many. Upper, lower and digit detection is
// Unicode-aware; the symbol class is the fixed ASCII punctuation set only.
// Characters outside all four classes set no flag.
func Classify(password string) (int, model.ClassFlags) {
	var flags model.ClassFlags
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			flags.Upper = true
		case unicode.IsLower(r):
			flags.Lower = true
		case unicode.IsDigit(r):
			flags.Digit = true
		case strings.ContainsRune(punctuation, r):
			flags.Symbol = true
		}
	}
	return flags.Count(), flags
}

// LengthBonus awards one point per length threshold met (8, 12, 16, 20),
// counting length in runes.
func LengthBonus(password string) int {
	length := utf8.RuneCountInString(password)
	bonus := 0
	for _, t := range lengthThresholds {
		if length >= t {
			bonus++
		}
	}
	return bonus
}

// Score combines class coverage and length into a 0..8 score. The length
// bonus is withheld until all four classes are present: a long password
// using a single class still scores 1.
func Score(password string) int {
	count, _ := Classify(password)
	if count < 4 {
		return count
	}
	return count + LengthBonus(password)
}

// Evaluate runs the full check for one password: common-list membership
// first, then classification and scoring. Membership short-circuits
// everything else and forces score 0.
func (s *Service) Evaluate(password string) model.EvaluationResult {
	if _, found := s.commonSet()[password]; found {
		return model.EvaluationResult{TooCommon: true}
	}

	count, flags := Classify(password)
	score := Score(password)

	result := model.EvaluationResult{
		Score:      score,
		ClassCount: count,
		Flags:      flags,
	}

	if count < 4 {
		result.Missing = flags.Missing()
		result.Advice = model.AdviceAllClasses
		return result
	}

	result.Length = utf8.RuneCountInString(password)
	result.Rating = model.RatingForScore(score)
	result.Rated = true
	if score < 5 {
		result.Advice = model.AdviceLonger
	}
	return result
}

func (s *Service) commonSet() map[string]struct{} {
	s.loadOnce.Do(func() {
		if s.common != nil || s.repo == nil {
			return
		}
		set, err := s.repo.Load()
		if err != nil {
			// A failed load counts as an empty set.
			set = map[string]struct{}{}
		}
		s.common = set
	})
	return s.common
}
