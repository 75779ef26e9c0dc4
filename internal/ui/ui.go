package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JAX838/delight-vision-sounds/internal/cart"
	"github.com/JAX838/delight-vision-sounds/internal/formatter"
	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"github.com/JAX838/delight-vision-sounds/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ProductListView ViewState = iota
	ProductDetailView
	CartView
	EditView
)

// toast is a transient on-screen notification.
type toast struct {
	text  string
	isErr bool
}

// toastNotifier adapts the model's toast channel to [tasks.Notifier].
type toastNotifier struct {
	ch chan toast
}

func (n toastNotifier) Success(message string) { n.send(toast{text: message}) }
func (n toastNotifier) Error(message string)   { n.send(toast{text: message, isErr: true}) }

func (n toastNotifier) send(t toast) {
	select {
	case n.ch <- t:
	default:
	}
}

// Model represents the TUI application state.
type Model struct {
	ctx         context.Context
	view        ViewState
	engine      *tasks.ShopEngine
	admin       bool
	width       int
	height      int
	productList list.Model
	listReady   bool
	products    []models.Product
	selected    *models.Product
	cartList    list.Model
	searchInput textinput.Model
	searching   bool
	editor      *editorState
	fetchToken  string
	toastChan   chan toast
	toast       toast
	err         error
	help        help.Model
	keys        keyMap
}

type productsFetchedMsg struct {
	token    string
	products []models.Product
	err      error
}

type productFetchedMsg struct {
	token   string
	product *models.Product
	err     error
}

type cartUpdatedMsg struct {
	snap cart.Snapshot
	err  error
}

type orderOpenedMsg struct {
	link string
	err  error
}

type editSubmittedMsg struct {
	err error
}

type toastMsg toast

// NewModel creates a new TUI model around the engine. The engine's notifier
// is replaced so toasts surface in the interface. Admin mode enables the
// product editor view.
func NewModel(ctx context.Context, engine *tasks.ShopEngine, admin bool) *Model {
	ch := make(chan toast, 16)
	engine.SetNotifier(toastNotifier{ch: ch})

	search := textinput.New()
	search.Placeholder = "Search products..."

	return &Model{
		ctx:         ctx,
		view:        ProductListView,
		engine:      engine,
		admin:       admin,
		searchInput: search,
		toastChan:   ch,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init initializes the TUI by fetching the product catalog.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchProducts(""), m.waitForToast())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.productList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		switch m.view {
		case ProductListView:
			return m.handleProductListKeys(msg)
		case ProductDetailView:
			return m.handleDetailKeys(msg)
		case CartView:
			return m.handleCartKeys(msg)
		case EditView:
			return m.handleEditKeys(msg)
		}

	case productsFetchedMsg:
		// A response for an abandoned fetch must not clobber newer state.
		if msg.token != m.fetchToken {
			return m, nil
		}
		if msg.err != nil {
			m.products = nil
		} else {
			m.products = msg.products
		}
		items := make([]list.Item, len(m.products))
		for i, p := range m.products {
			items[i] = productItem{product: p, currency: m.engine.Currency()}
		}
		m.productList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.productList.Title = "Products"
		m.productList.SetSize(m.width-4, m.height-8)
		m.listReady = true
		return m, nil

	case productFetchedMsg:
		if msg.token != m.fetchToken {
			return m, nil
		}
		if msg.err != nil {
			return m, nil
		}
		m.selected = msg.product
		m.view = ProductDetailView
		return m, nil

	case cartUpdatedMsg:
		m.rebuildCartList(msg.snap)
		return m, nil

	case orderOpenedMsg:
		return m, nil

	case editSubmittedMsg:
		if msg.err == nil && m.selected != nil {
			m.view = ProductDetailView
			return m, m.fetchProduct(m.selected.ID)
		}
		return m, nil

	case toastMsg:
		m.toast = toast(msg)
		return m, m.waitForToast()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var body string
	switch m.view {
	case ProductListView:
		body = m.renderProductList()
	case ProductDetailView:
		body = m.renderDetail()
	case CartView:
		body = m.renderCart()
	case EditView:
		body = m.renderEditor()
	}

	if m.toast.text != "" {
		style := styles.ok
		if m.toast.isErr {
			style = styles.err
		}
		body = fmt.Sprintf("%s\n\n%s", body, style.Render(m.toast.text))
	}
	return body
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, m.fetchProducts(m.searchInput.Value())
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleProductListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keys.cart):
		m.rebuildCartList(m.engine.Cart().Snapshot())
		m.view = CartView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if selected := m.productList.SelectedItem(); selected != nil {
			if p, ok := selected.(productItem); ok {
				return m, m.fetchProduct(p.product.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.productList, cmd = m.productList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ProductListView
		return m, nil
	case key.Matches(msg, m.keys.cart):
		m.rebuildCartList(m.engine.Cart().Snapshot())
		m.view = CartView
		return m, nil
	case key.Matches(msg, m.keys.add):
		if m.selected != nil {
			return m, m.addToCart(*m.selected)
		}
	case key.Matches(msg, m.keys.order):
		if m.selected != nil {
			return m, m.orderProduct(*m.selected)
		}
	case key.Matches(msg, m.keys.edit):
		if m.admin && m.selected != nil {
			m.editor = newEditor(*m.selected)
			m.view = EditView
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ProductListView
		return m, nil
	case key.Matches(msg, m.keys.increment):
		if line, ok := m.selectedCartLine(); ok {
			return m, m.setQuantity(line.ProductID, line.Quantity+1)
		}
	case key.Matches(msg, m.keys.decrement):
		if line, ok := m.selectedCartLine(); ok {
			return m, m.setQuantity(line.ProductID, line.Quantity-1)
		}
	case key.Matches(msg, m.keys.remove):
		if line, ok := m.selectedCartLine(); ok {
			return m, m.removeFromCart(line.ProductID)
		}
	case key.Matches(msg, m.keys.clear):
		return m, m.clearCart()
	}

	var cmd tea.Cmd
	m.cartList, cmd = m.cartList.Update(msg)
	return m, cmd
}

func (m *Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.editor = nil
		m.view = ProductDetailView
		return m, nil
	case key.Matches(msg, m.keys.nextField):
		m.editor.nextField()
		return m, nil
	case key.Matches(msg, m.keys.prevField):
		m.editor.prevField()
		return m, nil
	case key.Matches(msg, m.keys.newRow):
		m.editor.addRow()
		return m, nil
	case key.Matches(msg, m.keys.deleteRow):
		m.editor.removeRow()
		return m, nil
	case key.Matches(msg, m.keys.submit):
		return m, m.submitEdit()
	}

	return m, m.editor.update(msg)
}

func (m *Model) selectedCartLine() (models.CartLine, bool) {
	selected := m.cartList.SelectedItem()
	if selected == nil {
		return models.CartLine{}, false
	}
	item, ok := selected.(cartItem)
	return item.line, ok
}

func (m *Model) rebuildCartList(snap cart.Snapshot) {
	items := make([]list.Item, len(snap.Lines))
	for i, line := range snap.Lines {
		items[i] = cartItem{line: line, currency: m.engine.Currency()}
	}
	m.cartList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.cartList.Title = fmt.Sprintf("Cart • %d items • %s",
		snap.Count, formatter.Amount(m.engine.Currency(), snap.Total))
	m.cartList.SetSize(m.width-4, m.height-8)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ProductListView:
		if m.listReady {
			m.productList, cmd = m.productList.Update(msg)
		}
	case CartView:
		m.cartList, cmd = m.cartList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchProducts(query string) tea.Cmd {
	token := shared.GenerateID()
	m.fetchToken = token
	return func() tea.Msg {
		var (
			products []models.Product
			err      error
		)
		if query == "" {
			products, err = m.engine.Browse(m.ctx)
		} else {
			products, err = m.engine.Search(m.ctx, query)
		}
		return productsFetchedMsg{token: token, products: products, err: err}
	}
}

func (m *Model) fetchProduct(id string) tea.Cmd {
	token := shared.GenerateID()
	m.fetchToken = token
	return func() tea.Msg {
		product, err := m.engine.View(m.ctx, id)
		return productFetchedMsg{token: token, product: product, err: err}
	}
}

func (m *Model) addToCart(p models.Product) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.engine.AddToCart(p, 1)
		return cartUpdatedMsg{snap: snap, err: err}
	}
}

func (m *Model) setQuantity(productID string, quantity int) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.engine.Cart().UpdateQuantity(productID, quantity)
		return cartUpdatedMsg{snap: snap, err: err}
	}
}

func (m *Model) removeFromCart(productID string) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.engine.Cart().RemoveItem(productID)
		return cartUpdatedMsg{snap: snap, err: err}
	}
}

func (m *Model) clearCart() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.engine.Cart().Clear()
		return cartUpdatedMsg{snap: snap, err: err}
	}
}

func (m *Model) orderProduct(p models.Product) tea.Cmd {
	return func() tea.Msg {
		link, err := m.engine.OrderViaWhatsApp(p)
		return orderOpenedMsg{link: link, err: err}
	}
}

func (m *Model) submitEdit() tea.Cmd {
	editor := m.editor
	editor.commitFocused()
	return func() tea.Msg {
		err := m.engine.SubmitProductEdit(m.ctx, editor.productID, editor.form)
		return editSubmittedMsg{err: err}
	}
}

func (m *Model) waitForToast() tea.Cmd {
	return func() tea.Msg {
		return toastMsg(<-m.toastChan)
	}
}

func (m *Model) renderProductList() string {
	if m.searching {
		return fmt.Sprintf("%s\n\n%s", m.searchInput.View(),
			styles.help.Render("enter to search, esc to cancel"))
	}
	if !m.listReady {
		return "Loading products..."
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.search, m.keys.cart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.productList.View(), helpView)
}

func (m *Model) renderDetail() string {
	p := m.selected
	if p == nil {
		return "No product selected"
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(p.Name))
	fmt.Fprintf(&b, "\n%s • %s\n", formatter.Amount(m.engine.Currency(), p.Price), p.CategoryName())

	if p.InStock() {
		fmt.Fprintf(&b, "%s\n", styles.ok.Render(fmt.Sprintf("%d in stock", p.Stock)))
	} else {
		fmt.Fprintf(&b, "%s\n", styles.warn.Render("Out of stock"))
	}

	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	if len(p.Specifications) > 0 {
		b.WriteString("\n")
		for _, spec := range p.Specifications {
			fmt.Fprintf(&b, "  %s: %s\n", spec.Key, spec.Value)
		}
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.order, m.keys.cart, m.keys.back}
	if m.admin {
		helpKeys = append(helpKeys, m.keys.edit)
	}
	return fmt.Sprintf("%s\n%s", b.String(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderCart() string {
	helpKeys := []key.Binding{
		m.keys.increment, m.keys.decrement, m.keys.remove, m.keys.clear, m.keys.back,
	}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.cartList.View(), helpView)
}

func (m *Model) renderEditor() string {
	title := styles.title.Render(fmt.Sprintf("Edit '%s'", m.editor.form.Name))
	helpKeys := []key.Binding{
		m.keys.nextField, m.keys.newRow, m.keys.deleteRow, m.keys.submit, m.keys.back,
	}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", title, m.editor.view(), helpView)
}
