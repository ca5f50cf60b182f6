package app

import (
	"context"
	"fmt"
	"sync"

	"radio-quiz/internal/domain"
)

// ProgressStore persists the progress counters between runs.
// Load never fails: absent or unreadable progress is the zero state.
type ProgressStore interface {
	Load(ctx context.Context) domain.ProgressState
	Save(ctx context.Context, state domain.ProgressState) error
}

// QuizService binds a Quiz to a ProgressStore and keeps the live session.
type QuizService struct {
	quiz     *Quiz
	progress ProgressStore

	mu      sync.Mutex
	session domain.QuizSession
	started bool
}

func NewQuizService(quiz *Quiz, progress ProgressStore) *QuizService {
	return &QuizService{quiz: quiz, progress: progress}
}

// Start restores the session from the progress store.
func (s *QuizService) Start(ctx context.Context) domain.QuizSession {
	state := s.progress.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = s.quiz.Start(state)
	s.started = true
	return s.session
}

// Session returns a copy of the live session.
func (s *QuizService) Session() domain.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Current returns the view of the question awaiting an answer, if any.
func (s *QuizService) Current() (domain.QuestionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.View(s.session)
}

// Submit scores the selection, advances and persists progress.
func (s *QuizService) Submit(ctx context.Context, selection domain.Selection) (domain.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.session = s.quiz.Start(s.progress.Load(ctx))
		s.started = true
	}

	next, result, err := s.quiz.SubmitAnswer(s.session, selection)
	if err != nil {
		return result, err
	}
	s.session = next
	if err := s.progress.Save(ctx, next.Progress()); err != nil {
		return result, fmt.Errorf("save progress: %w", err)
	}
	return result, nil
}
