package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ricardomaia/credo/internal/order"
)

type approvalsState int

const (
	approvalsStateBrowse approvalsState = iota
	approvalsStateConfirm
)

type ApprovalsModel struct {
	CommonModel
	orderService *order.Service

	state  approvalsState
	table  table.Model
	orders []*order.Order
	form   *huh.Form

	// Decision being confirmed
	decision order.Status

	loading bool
	err     error
	status  string

	formConfirmed bool
}

func NewApprovalsModel(orderSvc *order.Service) ApprovalsModel {
	columns := []table.Column{
		{Title: "Order ID", Width: 36},
		{Title: "Customer", Width: 20},
		{Title: "Items", Width: 6},
		{Title: "Total", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ApprovalsModel{
		orderService: orderSvc,
		table:        t,
	}
}

func (m ApprovalsModel) Title() string { return "Pending Approvals" }
func (m ApprovalsModel) ShortHelp() string {
	if m.state == approvalsStateConfirm {
		return "Confirm decision | Esc: cancel"
	}
	return "Esc: back | a: approve | x: reject | r: refresh"
}

func (m ApprovalsModel) Init() tea.Cmd {
	return m.loadOrdersCmd()
}

func (m ApprovalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadApprovalsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.orders = msg.orders
		m.err = nil
		m.refreshTable()
		return m, nil

	case decisionSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving decision: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Order %s -> %s", msg.orderID, msg.status)
		}
		m.state = approvalsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadOrdersCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case approvalsStateBrowse:
		return m.updateBrowse(msg)
	case approvalsStateConfirm:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m ApprovalsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadOrdersCmd()
		case "a":
			return m.enterConfirmMode(order.StatusApproved)
		case "x":
			return m.enterConfirmMode(order.StatusRejected)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ApprovalsModel) enterConfirmMode(decision order.Status) (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.orders) {
		return m, nil
	}

	o := m.orders[idx]
	verb := "Approve"
	if decision == order.StatusRejected {
		verb = "Reject"
	}

	m.decision = decision
	m.formConfirmed = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("%s order %s (%s)?", verb, o.ID, FormatAmount(o.Total()))).
				Value(&m.formConfirmed),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = approvalsStateConfirm
	m.table.Blur()
	return m, m.form.Init()
}

func (m ApprovalsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = approvalsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.formConfirmed {
		m.state = approvalsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, nil
	}

	return m, m.decideCmd()
}

func (m ApprovalsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading pending orders...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Orders awaiting manual approval: %d", len(m.orders))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == approvalsStateConfirm && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(64).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ApprovalsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.orders))
	for _, o := range m.orders {
		rows = append(rows, table.Row{
			o.ID,
			o.CustomerID,
			fmt.Sprintf("%d", len(o.Items())),
			FormatAmount(o.Total()),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadApprovalsMsg struct {
	orders []*order.Order
	err    error
}

func (m ApprovalsModel) loadOrdersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		orders, err := m.orderService.ListByStatus(ctx, order.StatusPendingApproval)
		return loadApprovalsMsg{orders: orders, err: err}
	}
}

type decisionSavedMsg struct {
	orderID string
	status  order.Status
	err     error
}

func (m ApprovalsModel) decideCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.orders) {
		return nil
	}

	o := m.orders[idx]
	decision := m.decision

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.orderService.UpdateStatus(ctx, o.ID, decision)

		return decisionSavedMsg{orderID: o.ID, status: decision, err: err}
	}
}
