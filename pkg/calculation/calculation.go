package calculation

import (
	"math"
	"strconv"
	"strings"
)

type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

var operationNames = [...]string{
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
}

var operationLabels = [...]string{
	Add:      "Add",
	Subtract: "Subtract",
	Multiply: "Multiply",
	Divide:   "Divide",
}

var operationSymbols = [...]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
}

// Operations возвращает операции в порядке кнопок формы.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

func (op Operation) valid() bool {
	return op >= Add && op <= Divide
}

func (op Operation) String() string {
	if !op.valid() {
		return "operation(" + strconv.Itoa(int(op)) + ")"
	}
	return operationNames[op]
}

// Label возвращает подпись кнопки операции.
func (op Operation) Label() string {
	if !op.valid() {
		return op.String()
	}
	return operationLabels[op]
}

func (op Operation) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return operationSymbols[op]
}

// ParseOperation принимает имя операции (без учета регистра) или ее символ.
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, op := range Operations() {
		if s == operationNames[op] || s == operationSymbols[op] {
			return op, nil
		}
	}
	return 0, &OperationError{Name: s}
}

// parseNumber разбирает одно поле ввода.
func parseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Value: raw}
	}
	return v, nil
}

// ParseInputs разбирает оба поля формы. Ошибка первого поля возвращается раньше второго.
func ParseInputs(rawFirst, rawSecond string) (float64, float64, error) {
	a, err := parseNumber(FieldFirst, rawFirst)
	if err != nil {
		return 0, 0, err
	}

	b, err := parseNumber(FieldSecond, rawSecond)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func Compute(op Operation, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, &OperationError{Name: op.String()}
	}
}

// Calculate разбирает поля и только после успешного разбора вычисляет результат.
func Calculate(op Operation, rawFirst, rawSecond string) (float64, error) {
	a, b, err := ParseInputs(rawFirst, rawSecond)
	if err != nil {
		return 0, err
	}
	return Compute(op, a, b)
}

// FormatResult форматирует результат для формы: два знака после запятой.
func FormatResult(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// FormatPrecise форматирует результат для API и логов без округления.
func FormatPrecise(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
