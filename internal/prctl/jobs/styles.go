package jobs

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	plainStyle = lipgloss.NewStyle()
)

// statusStyle colors a status the same way across commands.
func statusStyle(s domain.JobStatus) lipgloss.Style {
	switch s {
	case domain.StatusSuccessful:
		return okStyle
	case domain.StatusFailed, domain.StatusError:
		return errorStyle
	case domain.StatusCanceled:
		return warnStyle
	case domain.StatusRunning, domain.StatusPending:
		return infoStyle
	default:
		return plainStyle
	}
}

func renderStatus(s domain.JobStatus) string {
	return statusStyle(s).Render(string(s))
}
