package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fcosta/horas/internal/cli/formatter"
)

// horasHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func horasHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dateInput returns a huh.Input for a required date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2024-06-10").
		Value(value).
		Validate(validateDate)
}

// clockInput returns a huh.Input for a required HH:MM time field.
func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("09:00").
		Value(value).
		Validate(validateClock)
}

// passwordInput returns a masked huh.Input.
func passwordInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(value)
}

// loginForm collects email and password.
func loginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Placeholder("you@formula.com").Value(email),
			passwordInput("Password", password),
		),
	).WithTheme(horasHuhTheme()).WithShowHelp(false)
}

// workSessionForm collects the fields of a work session log entry.
func workSessionForm(date, start, end *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			dateInput("Date (YYYY-MM-DD)", date),
			clockInput("Start time (HH:MM)", start),
			clockInput("End time (HH:MM)", end),
		),
	).WithTheme(horasHuhTheme()).WithShowHelp(false)
}

// trialVisitForm collects the fields of a trial visit.
func trialVisitForm(date, clock, patient *string, closed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			dateInput("Date (YYYY-MM-DD)", date),
			clockInput("Time (HH:MM)", clock),
			huh.NewInput().Title("Patient name").Value(patient),
			huh.NewConfirm().Title("Closed a package?").Value(closed),
		),
	).WithTheme(horasHuhTheme()).WithShowHelp(false)
}

// newPasswordForm collects a new password with confirmation.
func newPasswordForm(password, confirm *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			passwordInput("New password", password),
			passwordInput("Confirm new password", confirm),
		),
	).WithTheme(horasHuhTheme()).WithShowHelp(false)
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}
