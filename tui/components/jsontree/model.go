// Package jsontree is the Bubble Tea component that renders an explorer
// store as a collapsible tree. All tree state lives in the store; this model
// only tracks terminal concerns (cursor, viewport, search input) and maps
// key presses onto store operations.
package jsontree

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/jsontree/document"
	"github.com/grovetools/jsontree/explorer"
	"github.com/grovetools/jsontree/tui/components"
	"github.com/grovetools/jsontree/tui/theme"
	"github.com/grovetools/jsontree/tui/utils/scrollbar"
)

// BackMsg is sent when the user wants to exit the viewer.
type BackMsg struct{}

// DocumentReloadedMsg carries a freshly decoded document, typically from the
// file watcher. The model rebuilds the store and restores collapse state and
// the active search by key.
type DocumentReloadedMsg struct {
	Doc *document.Value
}

// clearStatusMsg is sent to clear the status message after a delay.
type clearStatusMsg struct{}

// Model is the Bubble Tea model for the JSON tree viewer.
type Model struct {
	viewport viewport.Model
	store    *explorer.Store
	keys     KeyMap
	title    string
	cursor   int
	width    int
	height   int
	ready    bool

	lastZPress time.Time // for detecting zR/zM sequences
	lastGPress time.Time // for detecting the gg sequence

	// Search state
	isSearching bool
	searchInput textinput.Model

	// Per-node match flags, derived from store.Matches after every search
	// state change.
	keyMatches   map[*explorer.Node]bool
	valueMatches map[*explorer.Node]bool

	statusMessage string
}

// New creates a viewer over an already built store.
func New(store *explorer.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/"
	ti.CharLimit = 100
	ti.Width = 30

	m := Model{
		store:       store,
		keys:        DefaultKeyMap(),
		searchInput: ti,
	}
	m.syncMatches()
	return m
}

// Store exposes the underlying explorer store.
func (m Model) Store() *explorer.Store { return m.store }

// SetTitle sets the header title, typically the file being viewed.
func (m *Model) SetTitle(title string) { m.title = title }

// SetSize sets the size of the component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	viewportHeight := height - 2 // reserve the header and status lines
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if m.ready {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	} else {
		m.viewport = viewport.New(width, viewportHeight)
		m.ready = true
	}
	m.updateContent()
}

// Init initializes the component.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.isSearching {
		return m.updateSearchInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case DocumentReloadedMsg:
		m.reload(msg.Doc)
		return m, m.clearStatusAfter()

	case clearStatusMsg:
		m.statusMessage = ""
		m.updateContent()
		return m, nil
	}

	return m, nil
}

func (m Model) updateSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.isSearching = false
			m.store.Search(m.searchInput.Value())
			m.syncMatches()
			m.jumpToFocusedMatch()
			m.updateContent()
			return m, nil
		case tea.KeyEsc:
			m.isSearching = false
			m.searchInput.SetValue("")
			m.store.ClearSearch()
			m.syncMatches()
			m.updateContent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// ExpandAll and CollapseAll share the fold-sequence starter (zR/zM).
	if key.Matches(msg, m.keys.ExpandAll) || key.Matches(msg, m.keys.CollapseAll) {
		m.lastZPress = time.Now()
		return m, nil
	}
	if time.Since(m.lastZPress) < 500*time.Millisecond {
		switch keyStr {
		case "R", "shift+r":
			m.store.ExpandAll()
			m.lastZPress = time.Time{}
			m.clampCursor()
			m.updateContent()
			return m, nil
		case "M", "shift+m":
			m.store.CollapseAll()
			m.lastZPress = time.Time{}
			m.setCursor(0)
			m.updateContent()
			return m, nil
		}
	}

	// gg goes to the top.
	if key.Matches(msg, m.keys.GotoTop) {
		if time.Since(m.lastGPress) < 500*time.Millisecond {
			m.setCursor(0)
			m.updateContent()
			m.lastGPress = time.Time{}
			return m, nil
		}
		m.lastGPress = time.Now()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.isSearching = true
		m.searchInput.Focus()
		m.updateContent()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextResult):
		m.store.FocusNextMatch()
		m.jumpToFocusedMatch()
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.PrevResult):
		m.store.FocusPreviousMatch()
		m.jumpToFocusedMatch()
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.setCursor(m.cursor - 1)
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.setCursor(m.cursor + 1)
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.setCursor(m.cursor - m.viewport.Height/2)
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.setCursor(m.cursor + m.viewport.Height/2)
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.GotoEnd):
		m.setCursor(len(m.store.DisplayNodes()) - 1)
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if n := m.cursorNode(); n != nil && n.IsRoot() {
			if n.IsCollapsed() {
				m.store.ExpandNode(n)
			} else {
				m.store.CollapseNode(n)
			}
			m.clampCursor()
			m.updateContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.Fold):
		// Vim-style h: fold the node under the cursor, or its parent when
		// the cursor is on a leaf or an already folded container.
		n := m.cursorNode()
		if n != nil && (!n.IsRoot() || n.IsCollapsed()) {
			n = n.Parent()
		}
		if n != nil {
			m.store.CollapseNode(n)
			m.moveCursorTo(n)
			m.updateContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.store.SearchQuery() != "" {
			m.store.ClearSearch()
			m.searchInput.SetValue("")
			m.syncMatches()
			m.updateContent()
			return m, nil
		}
		return m, func() tea.Msg { return BackMsg{} }
	}

	return m, nil
}

// reload swaps in a freshly decoded document, carrying over each container's
// collapse state and the active search by node key.
func (m *Model) reload(doc *document.Value) {
	collapsedKeys := make(map[string]bool)
	for _, n := range m.store.Nodes() {
		if n.IsRoot() && n.IsCollapsed() {
			collapsedKeys[n.Key()] = true
		}
	}
	query := m.store.SearchQuery()

	m.store.BuildNodes(doc, false)

	if len(collapsedKeys) > 0 {
		var toCollapse []*explorer.Node
		for _, n := range m.store.Nodes() {
			if collapsedKeys[n.Key()] {
				toCollapse = append(toCollapse, n)
			}
		}
		m.store.SetCollapsed(toCollapse, true)
	}
	if query != "" {
		m.store.Search(query)
	}

	m.syncMatches()
	m.clampCursor()
	m.statusMessage = theme.IconWatch + " document reloaded"
	m.updateContent()
}

func (m *Model) cursorNode() *explorer.Node {
	display := m.store.DisplayNodes()
	if m.cursor < 0 || m.cursor >= len(display) {
		return nil
	}
	return display[m.cursor]
}

// setCursor clamps and moves the cursor, shifting the hover highlight from
// the old row to the new one.
func (m *Model) setCursor(to int) {
	display := m.store.DisplayNodes()
	if len(display) == 0 {
		m.cursor = 0
		return
	}
	if to < 0 {
		to = 0
	}
	if to >= len(display) {
		to = len(display) - 1
	}
	if old := m.cursorNode(); old != nil {
		old.Highlight(false)
	}
	m.cursor = to
	display[to].Highlight(true)
}

func (m *Model) clampCursor() {
	m.setCursor(m.cursor)
}

func (m *Model) moveCursorTo(n *explorer.Node) {
	for i, d := range m.store.DisplayNodes() {
		if d == n {
			m.setCursor(i)
			return
		}
	}
}

// jumpToFocusedMatch reveals the focused match (opening collapsed ancestors,
// the explicit opt-in the store requires) and moves the cursor onto it.
func (m *Model) jumpToFocusedMatch() {
	match := m.store.FocusedMatch()
	if match == nil {
		return
	}
	m.store.RevealFocusedMatch()
	m.moveCursorTo(match.Node)
}

// syncMatches rebuilds the per-node match lookup from the store's matches.
func (m *Model) syncMatches() {
	m.keyMatches = make(map[*explorer.Node]bool)
	m.valueMatches = make(map[*explorer.Node]bool)
	for _, match := range m.store.Matches() {
		if match.Field == explorer.MatchKey {
			m.keyMatches[match.Node] = true
		} else {
			m.valueMatches[match.Node] = true
		}
	}
}

func (m *Model) clearStatusAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// updateContent renders the tree and updates the viewport.
func (m *Model) updateContent() {
	if !m.ready {
		return
	}

	var focusedNode *explorer.Node
	if match := m.store.FocusedMatch(); match != nil {
		focusedNode = match.Node
	}

	display := m.store.DisplayNodes()
	lines := make([]string, 0, len(display))
	for i, n := range display {
		lines = append(lines, m.renderNode(n, i == m.cursor, n == focusedNode))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	// Keep the cursor row inside the viewport.
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// renderNode renders a single node row.
func (m *Model) renderNode(n *explorer.Node, selected bool, focused bool) string {
	t := theme.DefaultTheme
	indent := strings.Repeat("  ", n.TreeDepth())

	var prefix string
	switch {
	case n.IsRoot() && n.IsCollapsed():
		prefix = theme.IconFolderPlus + " "
	case n.IsRoot():
		prefix = theme.IconFolderOpen + " "
	default:
		prefix = "  "
	}

	query := m.store.SearchQuery()
	keyDisplay := n.Name()
	if m.keyMatches[n] && query != "" {
		keyDisplay = m.highlightMatch(keyDisplay, query, t.Info, focused)
	} else {
		keyDisplay = t.Info.Render(keyDisplay)
	}

	valueDisplay := m.renderValue(n, query, focused)

	line := fmt.Sprintf("%s%s%s: %s", indent, prefix, keyDisplay, valueDisplay)
	if selected {
		line = t.Selected.Render(line)
	}
	return line
}

func (m *Model) renderValue(n *explorer.Node, query string, focused bool) string {
	t := theme.DefaultTheme

	if n.IsRoot() {
		open, closed := "{", n.Value().Display()
		if n.IsArray() {
			open = "["
		}
		if n.IsCollapsed() {
			return t.Muted.Render(closed)
		}
		return t.Muted.Render(open)
	}

	var style lipgloss.Style
	switch n.Value().Kind() {
	case document.KindString:
		style = t.Success
	case document.KindNumber:
		style = t.Warning
	case document.KindBool:
		style = t.Accent
	case document.KindNull:
		style = t.Error
	default:
		style = t.Muted
	}

	valStr := n.Value().Display()
	if n.Value().Kind() == document.KindString {
		valStr = fmt.Sprintf("%q", valStr)
	}
	if m.valueMatches[n] && query != "" {
		return m.highlightMatch(valStr, query, style, focused)
	}
	return style.Render(valStr)
}

// highlightMatch highlights every occurrence of query inside text, using the
// stronger focused-match style for the focused result.
func (m *Model) highlightMatch(text, query string, baseStyle lipgloss.Style, focused bool) string {
	t := theme.DefaultTheme
	highlightStyle := t.Highlight
	if focused {
		highlightStyle = t.FocusedMatch
	}

	// Lowering can change a rune's byte length (Ⱥ is two bytes, ⱥ three),
	// so offsets found in the lowered text cannot slice the original
	// directly. Keep a map from each lowered byte back to the original
	// offset of its rune and translate through it.
	var lowered strings.Builder
	lowered.Grow(len(text))
	back := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			back = append(back, i)
		}
		lowered.WriteRune(lr)
	}
	back = append(back, len(text))
	lowerText := lowered.String()
	lowerQuery := strings.ToLower(query)

	var result strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			result.WriteString(baseStyle.Render(text[back[start]:]))
			break
		}
		matchStart := start + idx
		matchEnd := matchStart + len(lowerQuery)
		result.WriteString(baseStyle.Render(text[back[start]:back[matchStart]]))
		result.WriteString(highlightStyle.Render(text[back[matchStart]:back[matchEnd]]))
		start = matchEnd
	}
	return result.String()
}

// View renders the JSON tree with its status line.
func (m Model) View() string {
	if !m.ready {
		return "Initializing JSON viewer..."
	}
	if len(m.store.Nodes()) == 0 {
		return theme.DefaultTheme.Muted.Render("No JSON data to display")
	}

	var left string
	switch {
	case m.statusMessage != "":
		left = theme.DefaultTheme.Success.Render(m.statusMessage)
	case m.isSearching:
		left = m.searchInput.View()
	case m.store.SearchQuery() != "":
		if count := len(m.store.Matches()); count > 0 {
			left = fmt.Sprintf("%s %s [%d/%d] (n/N to navigate, / to search again)",
				theme.IconSearch, m.store.SearchQuery(), m.store.FocusedMatchIndex()+1, count)
		} else {
			left = fmt.Sprintf("%s %s (no results)", theme.IconSearch, m.store.SearchQuery())
		}
		left = theme.DefaultTheme.Muted.Render(left)
	}
	right := theme.DefaultTheme.Muted.Render(fmt.Sprintf("%d/%d nodes",
		len(m.store.DisplayNodes()), len(m.store.Nodes())))
	statusBar := components.RenderStatusBar(left, right, m.width)

	title := m.title
	if title == "" {
		title = "jsontree"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(title),
		scrollbar.Overlay(&m.viewport),
		statusBar)
}
