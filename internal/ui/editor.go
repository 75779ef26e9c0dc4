package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JAX838/delight-vision-sounds/internal/forms"
	"github.com/JAX838/delight-vision-sounds/internal/models"
)

// Fixed form fields before the specification rows begin.
const fixedFields = 4

var fieldLabels = [fixedFields]string{"Name", "Price", "Stock", "Description"}

// editorState holds the admin product editor: the fixed product fields plus
// one key/value input pair per specification row. Moving focus away from a
// field commits its text into the underlying form.
type editorState struct {
	productID string
	form      *forms.ProductForm
	inputs    []textinput.Model
	focus     int
}

func newEditor(p models.Product) *editorState {
	e := &editorState{
		productID: p.ID,
		form:      forms.NewProductForm(p),
	}
	e.rebuildInputs()
	if len(e.inputs) > 0 {
		e.inputs[0].Focus()
	}
	return e
}

// rebuildInputs recreates the input slice from the form state.
func (e *editorState) rebuildInputs() {
	values := []string{e.form.Name, e.form.Price, e.form.Stock, e.form.Description}

	inputs := make([]textinput.Model, 0, fixedFields+2*e.form.Specs.Len())
	for i, v := range values {
		in := textinput.New()
		in.Placeholder = fieldLabels[i]
		in.SetValue(v)
		inputs = append(inputs, in)
	}

	for _, entry := range e.form.Specs.Entries() {
		k := textinput.New()
		k.Placeholder = "key"
		k.SetValue(entry.Key)

		v := textinput.New()
		v.Placeholder = "value"
		v.SetValue(entry.Value)

		inputs = append(inputs, k, v)
	}

	e.inputs = inputs
	if e.focus >= len(e.inputs) {
		e.focus = len(e.inputs) - 1
	}
}

// commitFocused writes the focused input's text back into the form.
func (e *editorState) commitFocused() {
	if e.focus < 0 || e.focus >= len(e.inputs) {
		return
	}

	value := e.inputs[e.focus].Value()
	switch e.focus {
	case 0:
		e.form.Name = value
	case 1:
		e.form.Price = value
	case 2:
		e.form.Stock = value
	case 3:
		e.form.Description = value
	default:
		row := (e.focus - fixedFields) / 2
		field := forms.FieldKey
		if (e.focus-fixedFields)%2 == 1 {
			field = forms.FieldValue
		}
		// Rows always come from the editor, so the position is in range.
		_ = e.form.Specs.Update(row, field, value)
	}
}

func (e *editorState) setFocus(i int) {
	e.commitFocused()
	e.inputs[e.focus].Blur()
	e.focus = (i + len(e.inputs)) % len(e.inputs)
	e.inputs[e.focus].Focus()
}

func (e *editorState) nextField() { e.setFocus(e.focus + 1) }
func (e *editorState) prevField() { e.setFocus(e.focus - 1) }

// addRow appends a blank specification entry and focuses its key input.
func (e *editorState) addRow() {
	e.commitFocused()
	pos := e.form.Specs.Add()
	e.rebuildInputs()
	e.inputs[e.focus].Blur()
	e.focus = fixedFields + 2*pos
	e.inputs[e.focus].Focus()
}

// removeRow deletes the specification row under focus, if any.
func (e *editorState) removeRow() {
	if e.focus < fixedFields {
		return
	}

	row := (e.focus - fixedFields) / 2
	if err := e.form.Specs.Remove(row); err != nil {
		return
	}

	e.rebuildInputs()
	if e.focus >= len(e.inputs) {
		e.focus = len(e.inputs) - 1
	}
	e.inputs[e.focus].Focus()
}

// update routes a message to the focused input.
func (e *editorState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd
}

func (e *editorState) view() string {
	var b strings.Builder

	for i := 0; i < fixedFields; i++ {
		fmt.Fprintf(&b, "%s\n%s\n", styles.help.Render(fieldLabels[i]), e.inputs[i].View())
	}

	if e.form.Specs.Len() > 0 {
		b.WriteString(styles.help.Render("Specifications"))
		b.WriteString("\n")
	}
	for i := fixedFields; i+1 < len(e.inputs); i += 2 {
		fmt.Fprintf(&b, "%s : %s\n", e.inputs[i].View(), e.inputs[i+1].View())
	}

	return b.String()
}
