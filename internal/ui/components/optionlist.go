package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/ui/theme"
)

// OptionList renders the answer choices for one question. The quiz
// session owns the answered/chosen state; this component only draws it.
type OptionList struct {
	Options      []string
	Cursor       int
	Answered     bool
	ChosenIndex  int
	CorrectIndex int
}

var optionLabels = []string{"A", "B", "C", "D"}

// NewOptionList creates an option list with the cursor on the first choice.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options:     options,
		ChosenIndex: -1,
	}
}

// MoveUp moves the cursor up one choice. No-op once answered.
func (o *OptionList) MoveUp() {
	if o.Answered {
		return
	}
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// MoveDown moves the cursor down one choice. No-op once answered.
func (o *OptionList) MoveDown() {
	if o.Answered {
		return
	}
	if o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
}

// MarkAnswered locks the list, recording which choice was taken and
// which was right so View can color them.
func (o *OptionList) MarkAnswered(chosen, correct int) {
	o.Answered = true
	o.ChosenIndex = chosen
	o.CorrectIndex = correct
}

// View renders the choices.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.Answered {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Answered && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Answered && i == o.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Answered:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// IsCorrect reports whether the recorded choice was the right one.
func (o OptionList) IsCorrect() bool {
	return o.Answered && o.ChosenIndex == o.CorrectIndex
}
