package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	subStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	forceGraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Padding(1, 0)
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
