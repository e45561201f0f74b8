package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	clientstore "github.com/ricardomaia/credo/internal/client/store"
	"github.com/ricardomaia/credo/internal/credit"
)

type AnalyzeModel struct {
	CommonModel
	analyzer *credit.Analyzer
	clients  *clientstore.Store

	clientInput textinput.Model
	dateInput   textinput.Model
	focusIndex  int // 0: client id, 1: date

	result  *credit.LoanResult
	loading bool
	status  string
}

func NewAnalyzeModel(analyzer *credit.Analyzer, clients *clientstore.Store) AnalyzeModel {
	clientIn := textinput.New()
	clientIn.Placeholder = "client id"
	clientIn.Width = 36
	clientIn.Prompt = "Client ID: "
	clientIn.Focus()

	dateIn := textinput.New()
	dateIn.Placeholder = "YYYY-MM-DD (empty = today)"
	dateIn.CharLimit = 10
	dateIn.Width = 26
	dateIn.Prompt = "Date:      "

	return AnalyzeModel{
		analyzer:    analyzer,
		clients:     clients,
		clientInput: clientIn,
		dateInput:   dateIn,
		status:      "Enter a client id to analyze",
	}
}

func (m AnalyzeModel) Title() string { return "Credit Analysis" }
func (m AnalyzeModel) ShortHelp() string {
	return "Esc: back | Tab: switch field | Enter: analyze"
}

func (m AnalyzeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AnalyzeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, Back

		case tea.KeyTab:
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.clientInput.Focus()
				m.dateInput.Blur()
			} else {
				m.clientInput.Blur()
				m.dateInput.Focus()
			}

			return m, textinput.Blink

		case tea.KeyEnter:
			clientID := m.clientInput.Value()
			if clientID == "" {
				m.status = "Client id is required"
				return m, nil
			}

			analysisDate := time.Now().UTC().Truncate(24 * time.Hour)
			if v := m.dateInput.Value(); v != "" {
				parsed, err := time.Parse("2006-01-02", v)
				if err != nil {
					m.status = "Invalid date format (YYYY-MM-DD)"
					return m, nil
				}
				analysisDate = parsed
			}

			m.loading = true
			m.result = nil
			m.status = "Analyzing..."

			return m, m.analyzeCmd(clientID, analysisDate)
		}

	case analysisDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			break
		}

		m.result = msg.result
		m.status = ""
	}

	var cmd1, cmd2 tea.Cmd
	m.clientInput, cmd1 = m.clientInput.Update(msg)
	m.dateInput, cmd2 = m.dateInput.Update(msg)

	return m, tea.Batch(cmd, cmd1, cmd2)
}

func (m AnalyzeModel) View() string {
	form := fmt.Sprintf("%s\n%s", m.clientInput.View(), m.dateInput.View())

	content := fmt.Sprintf("Credit Analysis\n\n%s\n\n(Enter to analyze, Esc to back)", form)

	if m.result != nil {
		verdict := "REJECTED"
		color := lipgloss.Color("203")
		if m.result.Approved {
			verdict = "APPROVED"
			color = lipgloss.Color("78")
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Render(fmt.Sprintf(
				"%s\n\n%s\nLimit: %s",
				lipgloss.NewStyle().Bold(true).Foreground(color).Render(verdict),
				m.result.Message,
				FormatAmount(m.result.Limit),
			))

		content += "\n\n" + panel
	}

	if m.status != "" {
		content += "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type analysisDoneMsg struct {
	result *credit.LoanResult
	err    error
}

func (m AnalyzeModel) analyzeCmd(clientID string, analysisDate time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.clients.GetClient(ctx, clientID)
		if err != nil {
			return analysisDoneMsg{err: err}
		}

		txs, err := m.clients.ListTransactions(ctx, c.ID, analysisDate.AddDate(0, -3, 0))
		if err != nil {
			return analysisDoneMsg{err: err}
		}

		result, err := m.analyzer.AnalyzeClient(ctx, c, txs, analysisDate)

		return analysisDoneMsg{result: result, err: err}
	}
}
