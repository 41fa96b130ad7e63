package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dosewise/internal/ui/components"
	"github.com/abhisek/dosewise/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch s.phase {
	case PhaseCase:
		return s.renderCaseSheet(width)
	case PhaseQuestions:
		return s.renderQuestions(width)
	default:
		return s.renderMatching(width)
	}
}

func (s *SessionScreen) renderCaseSheet(width int) string {
	p := s.scen.Patient
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("NEW DISPATCH") + "\n\n")
	b.WriteString(theme.Body.Width(width).Render(s.scen.DispatchInfo) + "\n\n")

	b.WriteString(field("Patient", p.Name))
	b.WriteString(field("Age", fmt.Sprintf("%d", p.Age)))
	b.WriteString(field("Gender", string(p.Gender)))
	b.WriteString(field("Address", p.Address+", "+p.Postcode))
	b.WriteString(field("NHS Number", p.NHSNumber))
	b.WriteString(field("Presenting", p.Presentation))
	if len(p.MedicalHistory) > 0 {
		b.WriteString(field("History", strings.Join(p.MedicalHistory, ", ")))
	}
	b.WriteString("\n")

	b.WriteString(theme.Label.Render("Repeat prescription  ") +
		theme.Hint.Render(fmt.Sprintf("(%s, issued %s)",
			s.scen.Document.PrescriptionCode,
			s.scen.Document.IssueDate.Format("02 Jan 2006"))) + "\n")
	for _, rx := range s.scen.Prescriptions {
		name := "  • " + rx.Medication.Name
		if rx.Medication.TimeCritical {
			b.WriteString(theme.Critical.Render(name+" ⏱") + "\n")
		} else {
			b.WriteString(theme.Body.Render(name) + "\n")
		}
		b.WriteString(theme.Hint.Render("      "+rx.Medication.Dose+" — "+rx.Instructions+" — "+rx.Quantity) + "\n")
	}

	if len(s.scen.GPLetters) > 0 {
		b.WriteString("\n" + theme.Label.Render("Documents on scene: ") +
			theme.Body.Render(strings.Join(s.scen.GPLetters, ", ")) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *SessionScreen) renderQuestions(width int) string {
	idx, total := s.progress()

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", idx, total),
		float64(idx)/float64(total),
		false,
		width-8,
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(
		bar.View() + "\n\n" + s.mc.View(),
	)
}

func (s *SessionScreen) renderMatching(width int) string {
	head := theme.Title.Width(width - 4).Render("MATCH EACH MEDICATION") + "\n" +
		theme.Subtitle.Width(width-4).Render(
			fmt.Sprintf("%d remaining", s.board.Remaining())) + "\n\n"

	return lipgloss.NewStyle().Padding(1, 2).Render(head + s.board.View(width-4))
}

func (s *SessionScreen) progress() (current, total int) {
	total = s.assessment.QuestionCount()
	_, answered := s.assessment.Score()
	current = answered
	if !s.feedback {
		current = answered + 1
	}
	if current > total {
		current = total
	}
	if current < 1 {
		current = 1
	}
	return current, total
}

func field(label, value string) string {
	return theme.Label.Render(fmt.Sprintf("%-12s", label)) + theme.Value.Render(value) + "\n"
}
