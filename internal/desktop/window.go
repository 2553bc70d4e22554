// Package desktop показывает калькулятор в нативном окне Fyne.
package desktop

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/MoodyShoo/simple-calculator/internal/form"
	"github.com/MoodyShoo/simple-calculator/pkg/calculation"
)

const (
	WindowWidth  = 360
	WindowHeight = 320
)

type Window struct {
	window  fyne.Window
	form    *form.Form
	first   *widget.Entry
	second  *widget.Entry
	result  *widget.Label
	buttons map[calculation.Operation]*widget.Button
	clear   *widget.Button
}

func New(app fyne.App, title string) *Window {
	w := &Window{
		window:  app.NewWindow(title),
		form:    form.New(),
		first:   widget.NewEntry(),
		second:  widget.NewEntry(),
		result:  widget.NewLabel(form.NeutralText),
		buttons: make(map[calculation.Operation]*widget.Button),
	}

	w.first.SetPlaceHolder("Enter first number")
	w.first.OnChanged = w.form.SetFirst
	w.second.SetPlaceHolder("Enter second number")
	w.second.OnChanged = w.form.SetSecond

	// Enter в любом поле складывает числа.
	w.first.OnSubmitted = func(string) { w.apply(calculation.Add) }
	w.second.OnSubmitted = func(string) { w.apply(calculation.Add) }

	grid := container.NewGridWithColumns(2)
	for _, op := range calculation.Operations() {
		b := widget.NewButton(op.Label(), func() { w.apply(op) })
		w.buttons[op] = b
		grid.Add(b)
	}
	w.clear = widget.NewButton("Clear", w.reset)

	inputs := widget.NewForm(
		widget.NewFormItem("First Number", w.first),
		widget.NewFormItem("Second Number", w.second),
	)

	w.window.SetContent(container.NewVBox(inputs, grid, w.clear, w.result))
	w.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return w
}

func (w *Window) apply(op calculation.Operation) {
	result, err := w.form.Apply(op)
	w.result.SetText(w.form.Display())

	if title, text, ok := w.form.Message(); ok {
		log.Printf("[desktop] %s failed: %v", op, err)
		dialog.ShowInformation(title, text, w.window)
		return
	}

	log.Printf("[desktop] %s %s %s = %s", w.form.First(), op.Symbol(), w.form.Second(), calculation.FormatPrecise(result))
}

func (w *Window) reset() {
	w.form.Clear()
	w.first.SetText("")
	w.second.SetText("")
	w.result.SetText(w.form.Display())
}

func (w *Window) ShowAndRun() {
	w.window.CenterOnScreen()
	w.window.ShowAndRun()
}
