// Package mockservice is a local stand-in for the validation service.
// It normalizes text with a few fixed rules so the form can be exercised
// without the real backend.
package mockservice

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Rorical/TextValidator/internal/models"
)

// MinTextLength mirrors the real service's request constraint.
const MinTextLength = 10

var (
	headingMarks  = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+`)
	emphasisMarks = regexp.MustCompile(`\*{1,2}(\S(?:[^*\n]*?\S)?)\*{1,2}`)
	spaceRuns     = regexp.MustCompile(`[ \t]+`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

type Server struct {
	router     chi.Router
	logger     *slog.Logger
	dailyLimit int

	now   func() time.Time
	mu    sync.Mutex
	day   string
	count int
}

type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithDailyLimit makes the server answer 429 after limit validations in
// one calendar day. Zero disables the limit.
func WithDailyLimit(limit int) Option {
	return func(s *Server) {
		s.dailyLimit = limit
	}
}

func New(opts ...Option) *Server {
	s := &Server{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", s.handleHealth)
	r.Post("/validate", s.handleValidate)
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text        string `json:"text"`
		ProfileName string `json:"profile_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if len(strings.TrimSpace(req.Text)) < MinTextLength {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]string{
				{"msg": "String should have at least 10 characters"},
			},
		})
		return
	}

	usage, ok := s.consume()
	if !ok {
		writeDetail(w, http.StatusTooManyRequests, "Daily limit exceeded.")
		return
	}

	normalized := Normalize(req.Text)
	report := Score(req.Text, normalized)
	s.logger.Info("validate",
		"profile", req.ProfileName,
		"input_len", len(req.Text),
		"score", report.HumanQualityScore,
	)

	writeJSON(w, http.StatusOK, models.Result{
		NormalizedText: normalized,
		QualityReport:  &report,
		Usage:          usage,
	})
}

func (s *Server) consume() (*models.Usage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if today := s.now().Format(time.DateOnly); today != s.day {
		s.day = today
		s.count = 0
	}
	if s.dailyLimit > 0 && s.count >= s.dailyLimit {
		return nil, false
	}
	s.count++
	if s.dailyLimit == 0 {
		return nil, true
	}
	return &models.Usage{Count: s.count, Limit: s.dailyLimit}, true
}

// Normalize strips markdown headings and asterisk emphasis, collapses runs
// of spaces and blank lines, and trims the result.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = headingMarks.ReplaceAllString(text, "")
	text = emphasisMarks.ReplaceAllString(text, "$1")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// Score is a crude 0-100 heuristic: it starts at 100 and loses points for
// every markup character removed and for very short text.
func Score(original, normalized string) models.QualityReport {
	removed := len(original) - len(normalized)
	if removed < 0 {
		removed = 0
	}
	score := 100 - removed
	if words := len(strings.Fields(normalized)); words < 5 {
		score -= 5 * (5 - words)
	}
	if score < 0 {
		score = 0
	}

	reasoning := "Clear and concise"
	switch {
	case score < 50:
		reasoning = "Heavy formatting noise; consider rewriting"
	case score < 80:
		reasoning = "Readable after cleanup"
	}

	return models.QualityReport{Reasoning: reasoning, HumanQualityScore: float64(score)}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
