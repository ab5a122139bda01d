package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/passcheck/passcheck/internal/config"
	"github.com/passcheck/passcheck/internal/model"
	"github.com/passcheck/passcheck/internal/service/strength"
	"github.com/passcheck/passcheck/pkg/logger"
)

const separator = "----------------------------------------"

// Shell runs the interactive read-eval-print loop: prompt, evaluate, report,
// until the user types exit/quit or the session is interrupted.
type Shell struct {
	evaluator strength.Evaluator
	cfg       config.ShellConfig
	in        io.Reader
	out       io.Writer
	results   *gocache.Cache
	log       *logger.Logger
}

func New(evaluator strength.Evaluator, cfg config.ShellConfig, in io.Reader, out io.Writer, log *logger.Logger) *Shell {
	return &Shell{
		evaluator: evaluator,
		cfg:       cfg,
		in:        in,
		out:       out,
		results:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		log:       log,
	}
}

// Run drives the loop until exit/quit, end of input, or context
// cancellation. Cancellation and EOF both end the session with a farewell.
func (s *Shell) Run(ctx context.Context) error {
	sessionID := uuid.New().String()
	s.log.Debug("session started", "session_id", sessionID)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		close(lines)
	}()

	for {
		fmt.Fprint(s.out, s.cfg.Prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Exiting.")
			s.log.Debug("session interrupted", "session_id", sessionID)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				fmt.Fprintln(s.out, "Exiting.")
				s.log.Debug("session ended", "session_id", sessionID)
				return nil
			}

			password := strings.TrimSpace(line)
			if isExit(password) {
				s.log.Debug("session closed by user", "session_id", sessionID)
				return nil
			}

			s.report(s.evaluate(password))
			fmt.Fprintln(s.out, separator)
		}
	}
}

// evaluate consults the session cache first; evaluation is idempotent, so a
// cached result is indistinguishable from a fresh one.
func (s *Shell) evaluate(password string) model.EvaluationResult {
	if cached, found := s.results.Get(password); found {
		return cached.(model.EvaluationResult)
	}
	result := s.evaluator.Evaluate(password)
	s.results.Set(password, result, gocache.DefaultExpiration)
	s.log.Debug("password evaluated", "score", result.Score, "class_count", result.ClassCount)
	return result
}

func (s *Shell) report(result model.EvaluationResult) {
	if result.TooCommon {
		fmt.Fprintln(s.out, "Password is too common. Strength: 0")
		return
	}

	if result.ClassCount < 4 {
		fmt.Fprintf(s.out, "Password strength score: %d - missing: %s\n",
			result.Score, strings.Join(result.Missing, ", "))
		if result.Advice != "" {
			fmt.Fprintln(s.out, result.Advice)
		}
		return
	}

	fmt.Fprintf(s.out, "Password strength score: %d (classes=4, length=%d)\n",
		result.Score, result.Length)
	fmt.Fprintf(s.out, "Rating: %s\n", result.Rating)
	if result.Advice != "" {
		fmt.Fprintln(s.out, result.Advice)
	}
}

func isExit(line string) bool {
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}
