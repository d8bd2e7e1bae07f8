package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sutego/sutego/internal/config"
	"github.com/sutego/sutego/internal/deletion"
	"github.com/sutego/sutego/internal/recycle"
	"github.com/sutego/sutego/internal/task"
	"github.com/sutego/sutego/internal/ui/confirm"
	"github.com/sutego/sutego/internal/ui/keys"
)

type viewState int

const (
	LIST_VIEW viewState = iota
	BIN_VIEW
	CONFIRM_VIEW
	QUITTING
)

// Model is the top-level bubbletea model for the task list, the recycle
// bin view, and the confirmation overlay.
type Model struct {
	coordinator *deletion.Coordinator
	store       task.Store
	bin         *recycle.Bin
	binCfg      config.Bin
	confirmCfg  config.Confirm

	keyMap *keys.KeyMap
	styles Styles

	state    viewState
	previous viewState

	list    list.Model
	binList list.Model

	confirm          confirm.Model
	pendingIDs       []string
	pendingPermanent bool

	selected map[string]struct{}

	events      chan deletion.Event
	unsubscribe func()

	status      string
	exitMessage string
	err         error
}

// New assembles the UI over the given coordinator and store.
func New(c *deletion.Coordinator, store task.Store, bin *recycle.Bin, cfg config.Config) *Model {
	styles := newStyles(cfg.UI)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Cursor.GetForeground())
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.Cursor.GetForeground())
	if cfg.UI.Density == "compact" {
		delegate.SetSpacing(0)
		delegate.ShowDescription = false
	}

	taskList := list.New(nil, delegate, defaultWidth, 20)
	taskList.Title = "Tasks"
	taskList.SetShowStatusBar(false)

	binList := list.New(nil, delegate, defaultWidth, 20)
	binList.Title = "Recycle Bin"
	binList.SetShowStatusBar(false)

	m := &Model{
		coordinator: c,
		store:       store,
		bin:         bin,
		binCfg:      cfg.Bin,
		confirmCfg:  cfg.Confirm,
		keyMap: keys.NewKeyMap(keys.KeyMapConfig{
			PermanentDeleteEnabled: cfg.Core.PermanentDelete.Enable,
		}),
		styles:      styles,
		list:        taskList,
		binList:     binList,
		selected:    make(map[string]struct{}),
		events:      make(chan deletion.Event, 16),
		exitMessage: cfg.UI.ExitMessage,
	}

	m.unsubscribe = c.Events().Subscribe(func(e deletion.Event) {
		select {
		case m.events <- e:
		default:
			// UI refresh is best effort; dropping an event only delays
			// the re-render until the next one.
			slog.Debug("dropped lifecycle event", "kind", e.Kind.String())
		}
	})

	return m
}

// Init satisfies the tea.Model interface
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasksCmd(),
		waitForEventCmd(m.events),
	)
}

// Close releases the event subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// deleteTargets returns the ids and titles the next delete gesture acts
// on: the multi-selection when present, otherwise the cursor line.
func (m *Model) deleteTargets() ([]string, []string) {
	if len(m.selected) > 0 {
		var ids, titles []string
		for _, it := range m.list.Items() {
			item, ok := it.(Item)
			if !ok {
				continue
			}
			if _, ok := m.selected[item.task.ID]; ok {
				ids = append(ids, item.task.ID)
				titles = append(titles, item.task.Title)
			}
		}
		return ids, titles
	}

	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return nil, nil
	}
	return []string{item.task.ID}, []string{item.task.Title}
}

// openConfirm switches to the confirmation overlay for the given targets.
func (m *Model) openConfirm(ids, titles []string, permanent bool) tea.Cmd {
	m.pendingIDs = ids
	m.pendingPermanent = permanent
	m.confirm = confirm.New(titles, permanent, m.confirmCfg.CountdownSeconds)
	m.previous = m.state
	m.state = CONFIRM_VIEW
	return m.confirm.Init()
}

func (m *Model) batchStatus(result *deletion.BatchResult) string {
	if result == nil {
		return ""
	}
	if result.Cancelled() {
		return "Cancelled."
	}
	if len(result.Failed) == 0 {
		return fmt.Sprintf("Deleted %d task(s).", len(result.Succeeded))
	}
	return fmt.Sprintf("Deleted %d task(s); %d failed: %v",
		len(result.Succeeded), len(result.Failed), result.Errors)
}
