// Package form хранит состояние формы калькулятора: два поля ввода,
// последний результат или ошибку и текст области результата.
package form

import (
	"errors"

	"github.com/MoodyShoo/simple-calculator/pkg/calculation"
)

type State int

const (
	Idle State = iota
	ResultShown
	ErrorShown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ResultShown:
		return "result"
	case ErrorShown:
		return "error"
	default:
		return "unknown"
	}
}

const (
	ResultPrefix = "Result: "
	NeutralText  = ResultPrefix + "-"

	ErrorTitle           = "Error"
	InputErrorTitle      = "Input Error"
	InputErrorMessage    = "Please enter valid numbers"
	DivisionErrorTitle   = ErrorTitle
	DivisionErrorMessage = "Cannot divide by zero"
)

// Form принадлежит одному окну или одному HTTP-запросу.
type Form struct {
	first  string
	second string
	state  State
	result float64
	err    error
}

func New() *Form {
	return &Form{}
}

// Restore создает форму с уже введенными полями, как после ввода пользователем.
func Restore(first, second string) *Form {
	f := New()
	f.SetFirst(first)
	f.SetSecond(second)
	return f
}

func (f *Form) SetFirst(s string)  { f.first = s }
func (f *Form) SetSecond(s string) { f.second = s }
func (f *Form) First() string      { return f.first }
func (f *Form) Second() string     { return f.second }
func (f *Form) State() State       { return f.state }
func (f *Form) Err() error         { return f.err }

// Result возвращает последний вычисленный результат, если он показан.
func (f *Form) Result() (float64, bool) {
	if f.state != ResultShown {
		return 0, false
	}
	return f.result, true
}

// Apply перечитывает текущие поля и выполняет операцию.
// Новый результат заменяет прежнюю ошибку, новая ошибка заменяет прежний результат.
func (f *Form) Apply(op calculation.Operation) (float64, error) {
	v, err := calculation.Calculate(op, f.first, f.second)
	if err != nil {
		f.state = ErrorShown
		f.result = 0
		f.err = err
		return 0, err
	}

	f.state = ResultShown
	f.result = v
	f.err = nil
	return v, nil
}

func (f *Form) Clear() {
	f.first = ""
	f.second = ""
	f.state = Idle
	f.result = 0
	f.err = nil
}

// Display возвращает текст области результата.
func (f *Form) Display() string {
	switch f.state {
	case ResultShown:
		return ResultPrefix + calculation.FormatResult(f.result)
	case ErrorShown:
		return ErrorText(f.err)
	default:
		return NeutralText
	}
}

// Message возвращает заголовок и текст сообщения об ошибке для модального окна.
func (f *Form) Message() (string, string, bool) {
	if f.state != ErrorShown {
		return "", "", false
	}
	title, text := Describe(f.err)
	return title, text, true
}

// Describe переводит ошибку вычисления в сообщение для пользователя.
func Describe(err error) (string, string) {
	switch {
	case err == nil:
		return "", ""
	case errors.Is(err, calculation.ErrDivisionByZero):
		return DivisionErrorTitle, DivisionErrorMessage
	case errors.Is(err, calculation.ErrInvalidInput):
		return InputErrorTitle, InputErrorMessage
	default:
		return ErrorTitle, err.Error()
	}
}

func ErrorText(err error) string {
	title, text := Describe(err)
	return title + ": " + text
}
