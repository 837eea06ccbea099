package tui

import (
	"errors"

	"dfview/internal/dataframe"
	"dfview/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Result 返回 TUI 运行后的必要信息。
type Result struct {
	SessionID     string
	SortColumn    int
	SortDirection dataframe.SortDirection
}

// Run 封装 Bubble Tea 入口，返回最终的排序状态。
func Run(opts Options) (Result, error) {
	sessionID, table := startSession(opts)

	programOptions := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.Mouse {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(table, programOptions...)
	m, err := program.Run()
	if err != nil {
		return Result{SessionID: sessionID}, err
	}
	final, ok := m.(*Table)
	if !ok {
		return Result{SessionID: sessionID}, errors.New("unexpected tui model")
	}
	col, dir := final.SortState()
	final.log.WithFields(logger.Fields{
		"event":     "session.end",
		"column":    col,
		"direction": dir.String(),
	}).Info("viewer closed")
	return Result{SessionID: sessionID, SortColumn: col, SortDirection: dir}, nil
}

// startSession 生成会话 ID 并构造模型；统计信息取自模型持有的 frame（nil 已被替换为空表）。
func startSession(opts Options) (string, *Table) {
	sessionID := uuid.NewString()
	if opts.Log == nil {
		opts.Log = logger.Named("table")
	}
	opts.Log = opts.Log.WithField("session", sessionID)

	table := New(opts)
	table.log.WithFields(logger.Fields{
		"event": "session.start",
		"rows":  table.frame.Len(),
		"cols":  table.frame.Width(),
	}).Info(table.title)
	return sessionID, table
}
