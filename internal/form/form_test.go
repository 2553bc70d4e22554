package form_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/MoodyShoo/simple-calculator/internal/form"
	"github.com/MoodyShoo/simple-calculator/pkg/calculation"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name        string
		first       string
		second      string
		op          calculation.Operation
		wantState   form.State
		wantDisplay string
		wantErr     error
	}{
		{
			name:        "Add",
			first:       "4",
			second:      "5",
			op:          calculation.Add,
			wantState:   form.ResultShown,
			wantDisplay: "Result: 9.00",
		},
		{
			name:        "Subtract",
			first:       "10",
			second:      "4",
			op:          calculation.Subtract,
			wantState:   form.ResultShown,
			wantDisplay: "Result: 6.00",
		},
		{
			name:        "Multiply",
			first:       "3",
			second:      "7",
			op:          calculation.Multiply,
			wantState:   form.ResultShown,
			wantDisplay: "Result: 21.00",
		},
		{
			name:        "Divide",
			first:       "10",
			second:      "2",
			op:          calculation.Divide,
			wantState:   form.ResultShown,
			wantDisplay: "Result: 5.00",
		},
		{
			name:        "Divide by zero",
			first:       "10",
			second:      "0",
			op:          calculation.Divide,
			wantState:   form.ErrorShown,
			wantDisplay: "Error: Cannot divide by zero",
			wantErr:     calculation.ErrDivisionByZero,
		},
		{
			name:        "Invalid input",
			first:       "abc",
			second:      "5",
			op:          calculation.Add,
			wantState:   form.ErrorShown,
			wantDisplay: "Input Error: Please enter valid numbers",
			wantErr:     calculation.ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := form.Restore(tc.first, tc.second)

			_, err := f.Apply(tc.op)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tc.wantErr)
			}

			if f.State() != tc.wantState || f.Display() != tc.wantDisplay {
				t.Errorf("unexpected form after Apply:\n%s", spew.Sdump(f))
			}

			if _, ok := f.Result(); ok != (tc.wantErr == nil) {
				t.Errorf("Result() shown = %v, want %v", ok, tc.wantErr == nil)
			}
		})
	}
}

func TestErrorDoesNotSurviveNextResult(t *testing.T) {
	f := form.Restore("1", "0")

	if _, err := f.Apply(calculation.Divide); err == nil {
		t.Fatal("expected division error")
	}

	f.SetSecond("4")
	v, err := f.Apply(calculation.Divide)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if v != 0.25 || f.Err() != nil || f.State() != form.ResultShown {
		t.Errorf("stale error after successful operation:\n%s", spew.Sdump(f))
	}

	if _, _, ok := f.Message(); ok {
		t.Error("Message() reported an error after a successful operation")
	}
}

func TestErrorReplacesResult(t *testing.T) {
	f := form.Restore("2", "3")
	if _, err := f.Apply(calculation.Multiply); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	f.SetFirst("")
	if _, err := f.Apply(calculation.Multiply); !errors.Is(err, calculation.ErrInvalidInput) {
		t.Fatalf("Apply() error = %v, want ErrInvalidInput", err)
	}

	if _, ok := f.Result(); ok {
		t.Error("numeric result still shown after invalid input")
	}

	title, text, ok := f.Message()
	if !ok || title != form.InputErrorTitle || text != form.InputErrorMessage {
		t.Errorf("Message() = %q, %q, %v", title, text, ok)
	}
}

func TestClear(t *testing.T) {
	prepare := map[string]func(f *form.Form){
		"idle": func(f *form.Form) {},
		"result": func(f *form.Form) {
			f.Apply(calculation.Add)
		},
		"error": func(f *form.Form) {
			f.SetSecond("0")
			f.Apply(calculation.Divide)
		},
	}

	for name, prep := range prepare {
		t.Run(name, func(t *testing.T) {
			f := form.Restore("8", "2")
			prep(f)

			f.Clear()
			once := *f
			f.Clear()

			if *f != once {
				t.Errorf("second Clear() changed the form:\n%s", spew.Sdump(f))
			}

			if f.State() != form.Idle || f.First() != "" || f.Second() != "" || f.Display() != form.NeutralText {
				t.Errorf("form not idle after Clear():\n%s", spew.Sdump(f))
			}
		})
	}
}

func TestDistinctErrorTexts(t *testing.T) {
	invalid := form.ErrorText(&calculation.InputError{Field: calculation.FieldFirst, Value: "x"})
	zero := form.ErrorText(calculation.ErrDivisionByZero)

	if invalid == zero {
		t.Errorf("error texts must differ, both are %q", invalid)
	}
}
