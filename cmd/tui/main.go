package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/ricardomaia/credo/cmd/tui/internal/view"
	clientStore "github.com/ricardomaia/credo/internal/client/store"
	"github.com/ricardomaia/credo/internal/config"
	"github.com/ricardomaia/credo/internal/credit"
	"github.com/ricardomaia/credo/internal/database"
	"github.com/ricardomaia/credo/internal/fraud"
	"github.com/ricardomaia/credo/internal/order"
	orderStore "github.com/ricardomaia/credo/internal/order/store"
)

type model struct {
	orderService *order.Service
	analyzer     *credit.Analyzer
	clients      *clientStore.Store

	currentView View

	approvalsView view.ApprovalsModel
	analyzeView   view.AnalyzeModel
}

type View int

const (
	ViewMenu      View = 0
	ViewApprovals View = 1
	ViewAnalyze   View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	var fraudGate credit.FraudGate = fraud.NewStatic()
	if cfg.Fraud.URL != "" {
		fraudGate = fraud.NewClient(cfg.Fraud.URL, cfg.Fraud.Token, cfg.Fraud.Timeout)
	}

	log := slog.Default()

	clients := clientStore.New(db)
	orderSvc := order.NewService(orderStore.New(db), log)
	analyzer := credit.NewAnalyzer(fraudGate, log)

	return model{
		orderService:  orderSvc,
		analyzer:      analyzer,
		clients:       clients,
		currentView:   ViewMenu,
		approvalsView: view.NewApprovalsModel(orderSvc),
		analyzeView:   view.NewAnalyzeModel(analyzer, clients),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewApprovals
				m.approvalsView = view.NewApprovalsModel(m.orderService)

				return m, m.approvalsView.Init()
			case "2":
				m.currentView = ViewAnalyze
				m.analyzeView = view.NewAnalyzeModel(m.analyzer, m.clients)

				return m, m.analyzeView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewApprovals:
		var newModel tea.Model
		newModel, cmd = m.approvalsView.Update(msg)
		m.approvalsView = newModel.(view.ApprovalsModel)
	case ViewAnalyze:
		var newModel tea.Model
		newModel, cmd = m.analyzeView.Update(msg)
		m.analyzeView = newModel.(view.AnalyzeModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Credo TUI\n\n" +
				"1. Pending Approvals\n" +
				"2. Credit Analysis\n\n" +
				"q. Quit",
		)
	case ViewApprovals:
		return m.approvalsView.View()
	case ViewAnalyze:
		return m.analyzeView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
