package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"radio-quiz/internal/app"
	"radio-quiz/internal/domain"
)

// Presenter runs the quiz over a line-oriented terminal.
type Presenter struct {
	service *app.QuizService
	in      *bufio.Scanner
	out     io.Writer
}

func NewPresenter(service *app.QuizService, in io.Reader, out io.Writer) *Presenter {
	return &Presenter{service: service, in: bufio.NewScanner(in), out: out}
}

// Run restores progress and asks questions until the quiz completes or input ends.
// Each answer is persisted before the next question is shown.
func (p *Presenter) Run(ctx context.Context) error {
	session := p.service.Start(ctx)
	if session.Completed {
		p.completed(session.Score)
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		view, ok := p.service.Current()
		if !ok {
			return nil
		}
		p.render(view)

		selection, ok := p.readSelection()
		if !ok {
			fmt.Fprintln(p.out)
			return p.in.Err()
		}

		result, err := p.service.Submit(ctx, selection)
		if err != nil {
			if errors.Is(err, domain.ErrQuizCompleted) {
				return nil
			}
			return err
		}
		if !result.Correct {
			fmt.Fprintf(p.out, "Your answer is incorrect.\nCorrect answer is: %s\n\n", domain.DisplayText(result.CorrectAnswer))
		}
		if result.Completed {
			p.completed(result.Score)
			return nil
		}
	}
}

func (p *Presenter) render(view domain.QuestionView) {
	fmt.Fprintf(p.out, "Question %d: %s\n", view.Index+1, strings.TrimSpace(view.Question))
	for i, option := range view.Options {
		fmt.Fprintf(p.out, "%s. %s\n", domain.Labels[i], domain.DisplayText(option))
	}
}

// readSelection prompts until a label or a blank line is entered. A blank
// line submits with nothing selected. ok is false once input is exhausted.
func (p *Presenter) readSelection() (domain.Selection, bool) {
	for {
		fmt.Fprint(p.out, "Your answer [A-D]: ")
		if !p.in.Scan() {
			return domain.NoSelection, false
		}
		selection, err := domain.ParseSelection(p.in.Text())
		if err == nil {
			return selection, true
		}
		fmt.Fprintln(p.out, "Please choose A, B, C or D.")
	}
}

func (p *Presenter) completed(score int) {
	fmt.Fprintf(p.out, "Quiz completed!\nYour score: %d\n", score)
}
