package app

import (
	"math/rand"
	"sync"
	"time"

	"radio-quiz/internal/domain"
)

// Shuffler produces a display ordering of a question's options.
type Shuffler interface {
	Shuffle(options domain.DisplayOptions) domain.DisplayOptions
}

// RandShuffler is a Fisher-Yates Shuffler over a seeded source.
type RandShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandShuffler(rnd *rand.Rand) *RandShuffler {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandShuffler{rnd: rnd}
}

func (s *RandShuffler) Shuffle(options domain.DisplayOptions) domain.DisplayOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(options) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
	return options
}

// Quiz holds the question set and display policy. It owns no mutable state:
// every transition takes a QuizSession and returns the next one.
type Quiz struct {
	questions []domain.QuestionRecord
	randomize bool
	shuffler  Shuffler
}

// NewQuiz builds a quiz. A nil shuffler falls back to a time-seeded RandShuffler.
func NewQuiz(questions []domain.QuestionRecord, randomize bool, shuffler Shuffler) *Quiz {
	if shuffler == nil {
		shuffler = NewRandShuffler(nil)
	}
	return &Quiz{questions: questions, randomize: randomize, shuffler: shuffler}
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.questions)
}

// Start restores a session from persisted progress. Progress at or past the
// end of the question set yields a completed session.
func (q *Quiz) Start(progress domain.ProgressState) domain.QuizSession {
	if !progress.Valid() {
		progress = domain.ProgressState{}
	}
	session := domain.QuizSession{CurrentIndex: progress.CurrentIndex, Score: progress.Score}
	if session.CurrentIndex >= len(q.questions) {
		session.Completed = true
		return session
	}
	session.Display = q.Display(session.CurrentIndex)
	return session
}

// Display generates the option ordering for question i.
func (q *Quiz) Display(i int) domain.DisplayOptions {
	options := domain.DisplayOptions(q.questions[i].Options)
	if q.randomize {
		return q.shuffler.Shuffle(options)
	}
	return options
}

// View renders the current question of a session.
func (q *Quiz) View(session domain.QuizSession) (domain.QuestionView, bool) {
	if session.Completed || session.CurrentIndex >= len(q.questions) {
		return domain.QuestionView{}, false
	}
	record := q.questions[session.CurrentIndex]
	return domain.QuestionView{
		Index:    session.CurrentIndex,
		Total:    len(q.questions),
		ID:       record.ID,
		Question: record.Question,
		Options:  session.Display,
	}, true
}

// SubmitAnswer scores selection against the current question and advances.
// Scoring compares option content, so the label a correct answer is shown under does not matter.
func (q *Quiz) SubmitAnswer(session domain.QuizSession, selection domain.Selection) (domain.QuizSession, domain.AnswerResult, error) {
	if session.Completed || session.CurrentIndex >= len(q.questions) {
		return session, domain.AnswerResult{}, domain.ErrQuizCompleted
	}

	record := q.questions[session.CurrentIndex]
	result := domain.AnswerResult{
		Selection:     selection,
		CorrectAnswer: record.CorrectOption(),
	}
	if slot := selection.Slot(); slot >= 0 {
		result.Selected = session.Display[slot]
		result.Correct = result.Selected == result.CorrectAnswer
	}

	next := session
	if result.Correct {
		next.Score++
	}
	next.CurrentIndex++
	if next.CurrentIndex < len(q.questions) {
		next.Display = q.Display(next.CurrentIndex)
	} else {
		next.Display = domain.DisplayOptions{}
		next.Completed = true
	}

	result.Score = next.Score
	result.Completed = next.Completed
	return next, result, nil
}
