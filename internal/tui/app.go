package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bgg "github.com/arnauldvm/boardgamegeek"
	"github.com/arnauldvm/boardgamegeek/cache"

	"github.com/arnauldvm/boardgamegeek/internal/config"
)

// Model is the main application model.
type Model struct {
	config    *config.Config
	bggClient *bgg.Client
	keys      KeyMap
	styles    Styles

	// Current view
	currentView View

	// Window dimensions
	width  int
	height int

	// Sub-models
	setupToken setupTokenModel
	menu       menuModel
	settings   settingsModel
	search     searchModel
	hot        hotModel
	collection collectionModel
	detail     detailModel
	videos     videosModel
	comments   commentsModel

	// Navigation history
	previousView View

	// View transitions and selection animation
	transition transitionState
	animFrame  int

	// Image support
	imageEnabled     bool
	imageCache       *imageCache
	needsClearImages bool

	// Help overlay
	showHelp bool
}

// New creates a new application model.
func New(cfg *config.Config) Model {
	styles := NewStyles(cfg.Interface.ColorTheme)
	keys := DefaultKeyMap()

	client := newClient(cfg)

	var imgEnabled bool
	var imgCache *imageCache
	if cfg.Display.ShowImages {
		if detectProtocol(cfg.Display.ImageProtocol) == ProtocolKitty {
			if c, err := newImageCache(); err == nil {
				imgEnabled = true
				imgCache = c
			}
		}
	}

	startView := ViewMenu
	if !cfg.HasToken() {
		startView = ViewSetupToken
	}

	return Model{
		config:       cfg,
		bggClient:    client,
		keys:         keys,
		styles:       styles,
		currentView:  startView,
		setupToken:   newSetupTokenModel(cfg, styles, keys),
		menu:         newMenuModel(styles, keys, cfg.HasToken()),
		settings:     newSettingsModel(cfg, styles, keys),
		search:       newSearchModel(cfg, styles, keys, imgEnabled, imgCache),
		hot:          newHotModel(cfg, styles, keys, imgEnabled, imgCache),
		collection:   newCollectionModel(cfg, styles, keys, imgEnabled, imgCache),
		imageEnabled: imgEnabled,
		imageCache:   imgCache,
	}
}

// newClient builds the API client from config, wiring the response cache
// and rate limit. Returns nil when no token is configured yet.
func newClient(cfg *config.Config) *bgg.Client {
	if !cfg.HasToken() {
		return nil
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		if d, err := config.CacheDir(); err == nil {
			dir = d
		}
	}

	// A broken cache backend is not fatal, the client runs uncached.
	backend, err := cache.New(cache.Options{
		Backend:   cfg.Cache.Backend,
		Dir:       dir,
		RedisAddr: cfg.Cache.RedisAddr,
	})
	if err != nil {
		backend = nil
	}

	client, err := bgg.NewClient(bgg.Config{
		Token:             cfg.API.Token,
		RequestsPerMinute: cfg.API.RequestsPerMinute,
		Cache:             backend,
		CacheTTL:          time.Duration(cfg.Cache.TTLHours) * time.Hour,
	})
	if err != nil {
		return nil
	}
	return client
}

// navigate switches views and arms the configured transition.
func (m *Model) navigate(v View) {
	m.currentView = v
	m.transition = startTransition(m.config.Interface.Transition)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{animTickCmd()}
	if m.currentView == ViewSetupToken {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.needsClearImages {
		m.needsClearImages = false
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case animTickMsg:
		m.animFrame++
		if m.transition.active {
			m.transition.tick()
		}
		return m, animTickCmd()
	}

	// Help overlay handling. Skipped while a text input has focus so "?"
	// stays typeable.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.showHelp {
			// Any key closes the help overlay
			m.showHelp = false
			return m, nil
		}
		if key.Matches(keyMsg, m.keys.Help) && !m.inTextEntry() {
			m.showHelp = true
			return m, nil
		}
	}

	// Delegate to current view
	switch m.currentView {
	case ViewSetupToken:
		return m.updateSetupToken(msg)
	case ViewMenu:
		return m.updateMenu(msg)
	case ViewSettings:
		return m.updateSettings(msg)
	case ViewSearchInput, ViewSearchResults:
		return m.updateSearch(msg)
	case ViewHot:
		return m.updateHot(msg)
	case ViewCollectionInput, ViewCollectionList:
		return m.updateCollection(msg)
	case ViewDetail:
		return m.updateDetail(msg)
	case ViewVideos:
		return m.updateVideos(msg)
	case ViewComments:
		return m.updateComments(msg)
	}

	return m, nil
}

// inTextEntry reports whether the current view has a focused text input.
func (m Model) inTextEntry() bool {
	switch m.currentView {
	case ViewSetupToken, ViewSearchInput, ViewCollectionInput:
		return true
	case ViewSettings:
		return m.settings.editing
	case ViewSearchResults:
		return m.search.filter.active
	case ViewHot:
		return m.hot.filter.active
	case ViewCollectionList:
		return m.collection.filter.active
	case ViewVideos:
		return m.videos.filter.active
	}
	return false
}

func (m Model) updateSetupToken(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.setupToken, cmd = m.setupToken.Update(msg)

	if m.setupToken.done {
		m.setupToken.done = false
		m.bggClient = newClient(m.config)
		m.menu = newMenuModel(m.styles, m.keys, m.config.HasToken())
		m.navigate(ViewMenu)
	}

	return m, cmd
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)

	if m.menu.selected != nil {
		view := *m.menu.selected
		m.menu.selected = nil

		switch view {
		case ViewSettings:
			m.navigate(ViewSettings)
			m.settings = newSettingsModel(m.config, m.styles, m.keys)
		case ViewSearchInput:
			m.navigate(ViewSearchInput)
			m.search = newSearchModel(m.config, m.styles, m.keys, m.imageEnabled, m.imageCache)
			return m, textinput.Blink
		case ViewHot:
			m.navigate(ViewHot)
			m.hot = newHotModel(m.config, m.styles, m.keys, m.imageEnabled, m.imageCache)
			return m, m.hot.loadHotItems(m.bggClient)
		case ViewCollectionInput:
			m.navigate(ViewCollectionInput)
			m.collection = newCollectionModel(m.config, m.styles, m.keys, m.imageEnabled, m.imageCache)
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.settings, cmd = m.settings.Update(msg)

	if m.settings.themeChanged {
		m.settings.themeChanged = false
		m.styles = NewStyles(m.config.Interface.ColorTheme)
		m.settings.styles = m.styles
		m.menu = newMenuModel(m.styles, m.keys, m.config.HasToken())
	}

	// Preview a changed animation right away.
	if m.settings.transitionChanged || m.settings.selectionChanged {
		m.settings.transitionChanged = false
		m.settings.selectionChanged = false
		m.transition = startTransition(m.config.Interface.Transition)
	}

	if m.settings.wantsBack || m.settings.wantsMenu {
		m.settings.wantsBack = false
		m.settings.wantsMenu = false
		m.bggClient = newClient(m.config) // token or cache may have changed
		m.menu = newMenuModel(m.styles, m.keys, m.config.HasToken())
		m.navigate(ViewMenu)
	}

	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg, m.bggClient)

	switch m.search.state {
	case searchStateInput:
		m.currentView = ViewSearchInput
	case searchStateLoading, searchStateResults, searchStateError:
		m.currentView = ViewSearchResults
	}

	if m.search.wantsBack || m.search.wantsMenu {
		m.search.wantsBack = false
		m.search.wantsMenu = false
		m.navigate(ViewMenu)
		if m.imageEnabled {
			m.needsClearImages = true
		}
	}

	if m.search.selected != nil {
		gameID := *m.search.selected
		m.search.selected = nil
		m.previousView = ViewSearchResults
		m.detail = newDetailModel(gameID, m.config, m.styles, m.keys, m.imageEnabled, m.imageCache, m.height)
		m.navigate(ViewDetail)
		if m.imageEnabled {
			m.needsClearImages = true
		}
		return m, m.detail.loadGame(m.bggClient)
	}

	return m, cmd
}

func (m Model) updateHot(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.hot, cmd = m.hot.Update(msg, m.bggClient)

	if m.hot.wantsBack || m.hot.wantsMenu {
		m.hot.wantsBack = false
		m.hot.wantsMenu = false
		m.navigate(ViewMenu)
		if m.imageEnabled {
			m.needsClearImages = true
		}
	}

	if m.hot.selected != nil {
		gameID := *m.hot.selected
		m.hot.selected = nil
		m.previousView = ViewHot
		m.detail = newDetailModel(gameID, m.config, m.styles, m.keys, m.imageEnabled, m.imageCache, m.height)
		m.navigate(ViewDetail)
		if m.imageEnabled {
			m.needsClearImages = true
		}
		return m, m.detail.loadGame(m.bggClient)
	}

	return m, cmd
}

func (m Model) updateCollection(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.collection, cmd = m.collection.Update(msg, m.bggClient)

	switch m.collection.state {
	case collectionStateInput:
		m.currentView = ViewCollectionInput
	case collectionStateLoading, collectionStateResults, collectionStateError:
		m.currentView = ViewCollectionList
	}

	if m.collection.wantsBack || m.collection.wantsMenu {
		m.collection.wantsBack = false
		m.collection.wantsMenu = false
		m.navigate(ViewMenu)
		if m.imageEnabled {
			m.needsClearImages = true
		}
	}

	if m.collection.selected != nil {
		gameID := *m.collection.selected
		m.collection.selected = nil
		m.previousView = ViewCollectionList
		m.detail = newDetailModel(gameID, m.config, m.styles, m.keys, m.imageEnabled, m.imageCache, m.height)
		m.navigate(ViewDetail)
		if m.imageEnabled {
			m.needsClearImages = true
		}
		return m, m.detail.loadGame(m.bggClient)
	}

	return m, cmd
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)

	if m.detail.wantsBack {
		m.detail.wantsBack = false
		m.navigate(m.previousView)
		if m.imageEnabled {
			m.needsClearImages = true
		}
	}

	gameName := ""
	if m.detail.game != nil {
		gameName = m.detail.game.Name
	}

	if m.detail.wantsVideos {
		m.detail.wantsVideos = false
		if m.imageEnabled {
			m.needsClearImages = true
		}
		var videos []bgg.Video
		if m.detail.game != nil {
			videos = m.detail.game.Videos
		}
		m.videos = newVideosModel(gameName, videos, m.config, m.styles, m.keys)
		m.navigate(ViewVideos)
		return m, nil
	}

	if m.detail.wantsComments {
		m.detail.wantsComments = false
		if m.imageEnabled {
			m.needsClearImages = true
		}
		m.comments = newCommentsModel(m.detail.gameID, gameName, m.config, m.styles, m.keys, m.height)
		m.navigate(ViewComments)
		return m, m.comments.loadComments(m.bggClient)
	}

	return m, cmd
}

func (m Model) updateVideos(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.videos, cmd = m.videos.Update(msg)

	if m.videos.wantsBack {
		m.videos.wantsBack = false
		m.navigate(ViewDetail)
	}
	if m.videos.wantsMenu {
		m.videos.wantsMenu = false
		m.navigate(ViewMenu)
	}

	return m, cmd
}

func (m Model) updateComments(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.comments, cmd = m.comments.Update(msg)

	if m.comments.wantsBack {
		m.comments.wantsBack = false
		m.navigate(ViewDetail)
	}

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var prefix string
	if m.needsClearImages {
		prefix = kittyDeleteSeq
	}

	content := m.contentView()
	if m.transition.active {
		content = renderTransition(content, m.transition)
	}
	return prefix + content
}

// contentView renders the current view without overlay or transitions.
func (m Model) contentView() string {
	selType := m.config.Interface.Selection

	switch m.currentView {
	case ViewSetupToken:
		return m.setupToken.View(m.width, m.height)
	case ViewMenu:
		return m.menu.View(m.width, m.height)
	case ViewSettings:
		return m.settings.View(m.width, m.height)
	case ViewSearchInput, ViewSearchResults:
		return m.search.View(m.width, m.height, selType, m.animFrame)
	case ViewHot:
		return m.hot.View(m.width, m.height, selType, m.animFrame)
	case ViewCollectionInput, ViewCollectionList:
		return m.collection.View(m.width, m.height, selType, m.animFrame)
	case ViewDetail:
		return m.detail.View(m.width, m.height)
	case ViewVideos:
		return m.videos.View(m.width, m.height, selType, m.animFrame)
	case ViewComments:
		return m.comments.View(m.width, m.height)
	}
	return ""
}

// renderHelpOverlay renders a centered keybindings overlay.
func (m Model) renderHelpOverlay() string {
	groups := m.keys.FullHelp()

	// Two-column rows: groups side by side, pairwise.
	var rows []string
	for i := 0; i < len(groups); i += 2 {
		left := groups[i]
		var right []key.Binding
		if i+1 < len(groups) {
			right = groups[i+1]
		}

		maxLen := len(left)
		if len(right) > maxLen {
			maxLen = len(right)
		}

		for j := 0; j < maxLen; j++ {
			var lKey, lDesc, rKey, rDesc string
			if j < len(left) {
				lKey = left[j].Help().Key
				lDesc = left[j].Help().Desc
			}
			if j < len(right) {
				rKey = right[j].Help().Key
				rDesc = right[j].Help().Desc
			}
			rows = append(rows, fmt.Sprintf("  %-10s %-14s %-10s %s", lKey, lDesc, rKey, rDesc))
		}
		rows = append(rows, "")
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Render("Keybindings")
	footer := lipgloss.NewStyle().Foreground(ColorMuted).Render("Press any key to close")

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(40, lipgloss.Center, title))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(40, lipgloss.Center, footer))

	content := m.styles.Border.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
