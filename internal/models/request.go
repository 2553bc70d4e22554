package models

// Поля передаются строками: разбор чисел выполняет калькулятор.
type CalculateRequest struct {
	First     string `json:"first"`
	Second    string `json:"second"`
	Operation string `json:"operation"`
}

type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "invalid_input"
	KindDivisionByZero   ErrorKind = "division_by_zero"
	KindUnknownOperation ErrorKind = "unknown_operation"
	KindOutOfRange       ErrorKind = "out_of_range"
)
