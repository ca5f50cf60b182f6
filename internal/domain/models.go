package domain

import "strings"

// OptionCount is the number of options every question carries.
const OptionCount = 4

// Labels are the on-screen labels of the four option slots.
var Labels = [OptionCount]string{"A", "B", "C", "D"}

// QuestionRecord is a single parsed multiple-choice question.
type QuestionRecord struct {
	ID          string              `json:"id"`
	Question    string              `json:"question"`
	Options     [OptionCount]string `json:"options"`
	AnswerIndex int                 `json:"answerIndex"` // 0 unless configured otherwise
}

// CorrectOption returns the content of the designated correct option.
func (q QuestionRecord) CorrectOption() string {
	return q.Options[q.AnswerIndex]
}

// ProgressState is what survives between runs.
type ProgressState struct {
	CurrentIndex int `json:"current_question_index"`
	Score        int `json:"score"`
}

// Valid reports whether both counters are non-negative.
func (p ProgressState) Valid() bool {
	return p.CurrentIndex >= 0 && p.Score >= 0
}

// DisplayOptions is the on-screen ordering of a question's options.
type DisplayOptions [OptionCount]string

// Selection is the label of the chosen option slot, or empty when nothing was chosen.
type Selection string

// NoSelection is submitted when the user advances without choosing.
const NoSelection Selection = ""

// ParseSelection normalizes user input into a Selection.
// Blank input is NoSelection; anything other than A-D is ErrInvalidSelection.
func ParseSelection(raw string) (Selection, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return NoSelection, nil
	}
	for _, label := range Labels {
		if raw == label {
			return Selection(label), nil
		}
	}
	return NoSelection, ErrInvalidSelection
}

// Slot returns the zero-based option slot, or -1 for no/unknown selection.
func (s Selection) Slot() int {
	for i, label := range Labels {
		if string(s) == label {
			return i
		}
	}
	return -1
}

// QuizSession is the full presenter state, independent of any rendering layer.
type QuizSession struct {
	CurrentIndex int            `json:"currentIndex"`
	Score        int            `json:"score"`
	Display      DisplayOptions `json:"display"`
	Completed    bool           `json:"completed"`
}

// Progress extracts the persisted part of the session.
func (s QuizSession) Progress() ProgressState {
	return ProgressState{CurrentIndex: s.CurrentIndex, Score: s.Score}
}

// AnswerResult summarizes the outcome of one submission.
type AnswerResult struct {
	Selection     Selection `json:"selection"`
	Selected      string    `json:"selected"`
	Correct       bool      `json:"correct"`
	CorrectAnswer string    `json:"correctAnswer"`
	Score         int       `json:"score"`
	Completed     bool      `json:"completed"`
}

// QuestionView is what a presenter renders for the current question.
type QuestionView struct {
	Index    int            `json:"index"`
	Total    int            `json:"total"`
	ID       string         `json:"id"`
	Question string         `json:"question"`
	Options  DisplayOptions `json:"options"`
}

// DisplayText flattens multi-line field content onto a single line.
func DisplayText(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
