package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/umsebenzi/internal/render"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// boardAPI is the subset of RemoteAPI the board needs.
type boardAPI interface {
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.TaskView, error)
	UpdateTaskStatus(ctx context.Context, code string, status models.Status) (*models.TaskView, error)
}

type boardModel struct {
	ctx    context.Context
	api    boardAPI
	filter models.TaskFilter

	columns []models.Status
	tasks   map[models.Status][]models.TaskView
	active  int
	cursor  int
	width   int
	height  int

	spinner spinner.Model
	loading bool
	message string
	err     error
}

// boardLoadedMsg carries a fresh task listing back to the model.
type boardLoadedMsg struct {
	tasks []models.TaskView
	err   error
}

// boardMovedMsg reports the result of a status change.
type boardMovedMsg struct {
	task *models.TaskView
	err  error
}

// Style definitions.
var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeColumnStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newBoardModel(ctx context.Context, api boardAPI, filter models.TaskFilter) boardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

	return boardModel{
		ctx:     ctx,
		api:     api,
		filter:  filter,
		columns: models.AllStatuses(),
		tasks:   make(map[models.Status][]models.TaskView),
		spinner: s,
		loading: true,
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m boardModel) load() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.api.ListTasks(m.ctx, m.filter)
		return boardLoadedMsg{tasks: tasks, err: err}
	}
}

func (m boardModel) move(task models.TaskView, status models.Status) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.api.UpdateTaskStatus(m.ctx, task.Code, status)
		return boardMovedMsg{task: updated, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % len(m.columns)
			m.cursor = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.active = (m.active - 1 + len(m.columns)) % len(m.columns)
			m.cursor = 0
			return m, nil
		case "down", "j":
			if m.cursor < len(m.activeTasks())-1 {
				m.cursor++
			}
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "]", ">":
			return m.shift(1)
		case "[", "<":
			return m.shift(-1)
		case "r":
			m.loading = true
			return m, m.load()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tasks = groupByStatus(msg.tasks)
		m.err = nil
		if m.cursor >= len(m.activeTasks()) {
			m.cursor = 0
		}
		return m, nil

	case boardMovedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.message = fmt.Sprintf("%s moved to %s", msg.task.Code, msg.task.Status.Display())
		m.loading = true
		return m, m.load()
	}

	return m, nil
}

// shift moves the selected task one column left or right.
func (m boardModel) shift(delta int) (tea.Model, tea.Cmd) {
	tasks := m.activeTasks()
	if len(tasks) == 0 {
		return m, nil
	}
	target := m.active + delta
	if target < 0 || target >= len(m.columns) {
		return m, nil
	}
	return m, m.move(tasks[m.cursor], m.columns[target])
}

func (m boardModel) activeTasks() []models.TaskView {
	return m.tasks[m.columns[m.active]]
}

func (m boardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := boardTitleStyle.Render(" umsebenzi board ")
	help := helpStyle.Render("←/→: column | ↑/↓: task | [/]: move task | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  %s Loading tasks...\n\n%s", title, m.spinner.View(), help)
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n  %s: %s\n\n%s", title, render.ErrorLabel(), m.err, help)
	}

	colWidth := (m.width - 2) / len(m.columns)
	if colWidth < 16 {
		colWidth = 16
	}
	panels := make([]string, len(m.columns))
	for i, s := range m.columns {
		style := columnStyle
		if i == m.active {
			style = activeColumnStyle
		}
		panels[i] = style.Width(colWidth - 4).Render(m.renderColumn(i, s, colWidth-6))
	}

	status := ""
	if m.message != "" {
		status = "\n" + m.message
	}
	return fmt.Sprintf("%s\n\n%s\n%s\n%s", title, lipgloss.JoinHorizontal(lipgloss.Top, panels...), status, help)
}

func (m boardModel) renderColumn(idx int, s models.Status, width int) string {
	var b strings.Builder
	tasks := m.tasks[s]
	b.WriteString(render.StatusStyle(s).Bold(true).Render(fmt.Sprintf("%s (%d)", s.Display(), len(tasks))))
	b.WriteString("\n")
	for i, t := range tasks {
		line := truncate(t.Code+" "+t.Title, width)
		if idx == m.active && i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func groupByStatus(tasks []models.TaskView) map[models.Status][]models.TaskView {
	out := make(map[models.Status][]models.TaskView)
	for _, t := range tasks {
		out[t.Status] = append(out[t.Status], t)
	}
	return out
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

var (
	boardProject int
	boardStatus  string
)

var taskBoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive board of tasks grouped by status",
	Long: `Launch an interactive terminal board with one column per status.

Move between columns with ←/→ (or tab), between tasks with ↑/↓, move the
selected task to the previous or next status with [ and ], refresh with r and
quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		filter, err := taskFilter(boardProject, boardStatus)
		if err != nil {
			return err
		}
		p := tea.NewProgram(newBoardModel(commandContext(cmd), API, filter), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	taskBoardCmd.Flags().IntVarP(&boardProject, "project", "p", 0, "only tasks of this project id")
	taskBoardCmd.Flags().StringVarP(&boardStatus, "status", "s", "", "only tasks with this status selector (1-7)")
	taskCmd.AddCommand(taskBoardCmd)
}
