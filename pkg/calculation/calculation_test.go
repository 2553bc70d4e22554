package calculation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/MoodyShoo/simple-calculator/pkg/calculation"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name    string
		op      calculation.Operation
		first   string
		second  string
		want    float64
		wantErr error
	}{
		{
			name:   "Add",
			op:     calculation.Add,
			first:  "4",
			second: "5",
			want:   9,
		},
		{
			name:   "Subtract",
			op:     calculation.Subtract,
			first:  "10",
			second: "4",
			want:   6,
		},
		{
			name:   "Multiply",
			op:     calculation.Multiply,
			first:  "3",
			second: "7",
			want:   21,
		},
		{
			name:   "Divide",
			op:     calculation.Divide,
			first:  "10",
			second: "2",
			want:   5,
		},
		{
			name:    "Divide by zero",
			op:      calculation.Divide,
			first:   "10",
			second:  "0",
			wantErr: calculation.ErrDivisionByZero,
		},
		{
			name:    "Divide by negative zero",
			op:      calculation.Divide,
			first:   "10",
			second:  "-0",
			wantErr: calculation.ErrDivisionByZero,
		},
		{
			name:    "Non numeric first",
			op:      calculation.Add,
			first:   "abc",
			second:  "5",
			wantErr: calculation.ErrInvalidInput,
		},
		{
			name:    "Empty second",
			op:      calculation.Add,
			first:   "1",
			second:  "",
			wantErr: calculation.ErrInvalidInput,
		},
		{
			name:    "Invalid input wins over zero divisor",
			op:      calculation.Divide,
			first:   "x",
			second:  "0",
			wantErr: calculation.ErrInvalidInput,
		},
		{
			name:   "Scientific and negative literals",
			op:     calculation.Multiply,
			first:  "-3.5",
			second: "1e3",
			want:   -3500,
		},
		{
			name:   "Surrounding spaces",
			op:     calculation.Add,
			first:  " 2 ",
			second: "\t3",
			want:   5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calculation.Calculate(tc.op, tc.first, tc.second)

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Calculate() error = %v, wantErr %v", err, tc.wantErr)
			}

			if tc.wantErr == nil && got != tc.want {
				t.Errorf("Calculate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseInputsRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "inf", "-Inf", "1e400", "1,5", "2+2"} {
		t.Run(raw, func(t *testing.T) {
			_, _, err := calculation.ParseInputs(raw, "1")
			if !errors.Is(err, calculation.ErrInvalidInput) {
				t.Fatalf("ParseInputs(%q) error = %v, want ErrInvalidInput", raw, err)
			}
		})
	}
}

func TestParseInputsReportsField(t *testing.T) {
	_, _, err := calculation.ParseInputs("1", "two")

	var inputErr *calculation.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %T", err)
	}

	if inputErr.Field != calculation.FieldSecond || inputErr.Value != "two" {
		t.Errorf("InputError = %+v", inputErr)
	}
}

func TestComputeMatchesNativeArithmetic(t *testing.T) {
	pairs := [][2]float64{
		{0.1, 0.2},
		{-7.25, 3},
		{1e308, 10},
		{math.SmallestNonzeroFloat64, 2},
		{123456789, -0.001},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]

		checks := []struct {
			op   calculation.Operation
			want float64
		}{
			{calculation.Add, a + b},
			{calculation.Subtract, a - b},
			{calculation.Multiply, a * b},
			{calculation.Divide, a / b},
		}

		for _, c := range checks {
			got, err := calculation.Compute(c.op, a, b)
			if err != nil {
				t.Fatalf("Compute(%v, %v, %v) error = %v", c.op, a, b, err)
			}
			if got != c.want {
				t.Errorf("Compute(%v, %v, %v) = %v, want %v", c.op, a, b, got, c.want)
			}
		}
	}
}

func TestComputeUnknownOperation(t *testing.T) {
	_, err := calculation.Compute(calculation.Operation(42), 1, 2)
	if !errors.Is(err, calculation.ErrUnknownOperation) {
		t.Errorf("Compute() error = %v, want ErrUnknownOperation", err)
	}
}

func TestParseOperation(t *testing.T) {
	cases := []struct {
		input   string
		want    calculation.Operation
		wantErr bool
	}{
		{input: "add", want: calculation.Add},
		{input: "SUBTRACT", want: calculation.Subtract},
		{input: "*", want: calculation.Multiply},
		{input: " / ", want: calculation.Divide},
		{input: "modulo", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := calculation.ParseOperation(tc.input)

			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseOperation() error = %v, wantErr %v", err, tc.wantErr)
			}

			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseOperation() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		value       float64
		wantFixed   string
		wantPrecise string
	}{
		{value: 9, wantFixed: "9.00", wantPrecise: "9"},
		{value: 1.0 / 3, wantFixed: "0.33", wantPrecise: "0.3333333333333333"},
		{value: -2.5, wantFixed: "-2.50", wantPrecise: "-2.5"},
		{value: -0.001, wantFixed: "0.00", wantPrecise: "-0.001"},
		{value: 1e21, wantFixed: "1000000000000000000000.00", wantPrecise: "1e+21"},
	}

	for _, tc := range cases {
		if got := calculation.FormatResult(tc.value); got != tc.wantFixed {
			t.Errorf("FormatResult(%v) = %q, want %q", tc.value, got, tc.wantFixed)
		}
		if got := calculation.FormatPrecise(tc.value); got != tc.wantPrecise {
			t.Errorf("FormatPrecise(%v) = %q, want %q", tc.value, got, tc.wantPrecise)
		}
	}
}
