package web

import (
	"encoding/json"
	"errors"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/MoodyShoo/simple-calculator/internal/form"
	"github.com/MoodyShoo/simple-calculator/internal/models"
	"github.com/MoodyShoo/simple-calculator/internal/util"
	"github.com/MoodyShoo/simple-calculator/pkg/calculation"
)

// sendPage отрисовывает форму и отправляет ее клиенту.
func (m *Module) sendPage(c *fiber.Ctx, f *form.Form, actionErr error, status int) error {
	body, err := m.page.render(f, actionErr)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(body)
}

// IndexHandler отдает пустую форму.
func (m *Module) IndexHandler(c *fiber.Ctx) error {
	body, err := m.page.render(form.New(), nil)
	if err != nil {
		return err
	}

	tag := etag(body)
	c.Set(fiber.HeaderETag, tag)
	if c.Get(fiber.HeaderIfNoneMatch) == tag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	c.Type("html", "utf-8")
	return c.Send(body)
}

// SubmitHandler обрабатывает нажатие кнопки формы.
func (m *Module) SubmitHandler(c *fiber.Ctx) error {
	log.Printf("SubmitHandler: started")
	defer log.Printf("SubmitHandler: finished")

	f := form.Restore(c.FormValue(FieldFirst), c.FormValue(FieldSecond))

	action := c.FormValue(FieldAction)
	if action == ActionClear {
		f.Clear()
		return m.sendPage(c, f, nil, fiber.StatusOK)
	}

	op, err := calculation.ParseOperation(action)
	if err != nil {
		log.Printf("SubmitHandler: %v", err)
		return m.sendPage(c, f, err, fiber.StatusBadRequest)
	}

	result, err := f.Apply(op)
	if err != nil {
		log.Printf("SubmitHandler: %s failed: %v", op, err)
		return m.sendPage(c, f, nil, fiber.StatusOK)
	}

	log.Printf("SubmitHandler: %s %s %s = %s", f.First(), op.Symbol(), f.Second(), calculation.FormatPrecise(result))
	return m.sendPage(c, f, nil, fiber.StatusOK)
}

func (m *Module) StyleHandler(c *fiber.Ctx) error {
	c.Type("css", "utf-8")
	return c.Send(m.page.style)
}

// CalculateHandler обрабатывает JSON-запрос на вычисление
func (m *Module) CalculateHandler(c *fiber.Ctx) error {
	log.Printf("CalculateHandler: started")
	defer log.Printf("CalculateHandler: finished")

	var req models.CalculateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Printf("CalculateHandler: failed to decode request body: %v", err)
		return util.SendError(c, "unprocessable entity", "", fiber.StatusUnprocessableEntity)
	}

	op, err := calculation.ParseOperation(req.Operation)
	if err != nil {
		return util.SendError(c, err.Error(), models.KindUnknownOperation, fiber.StatusBadRequest)
	}

	a, b, err := calculation.ParseInputs(req.First, req.Second)
	if err != nil {
		log.Printf("CalculateHandler: %v", err)
		return util.SendError(c, form.InputErrorMessage, models.KindInvalidInput, fiber.StatusUnprocessableEntity)
	}

	result, err := calculation.Compute(op, a, b)
	if errors.Is(err, calculation.ErrDivisionByZero) {
		log.Printf("CalculateHandler: %v", err)
		return util.SendError(c, form.DivisionErrorMessage, models.KindDivisionByZero, fiber.StatusUnprocessableEntity)
	}
	if err != nil {
		return err
	}

	// JSON не умеет передавать бесконечность.
	if math.IsInf(result, 0) {
		return util.SendError(c, "Result is out of range", models.KindOutOfRange, fiber.StatusUnprocessableEntity)
	}

	log.Printf("CalculateHandler: %s %s %s = %s",
		calculation.FormatPrecise(a), op.Symbol(), calculation.FormatPrecise(b), calculation.FormatPrecise(result))

	return util.SendResponse(c, &models.CalculateResponse{
		Operation: op.String(),
		First:     a,
		Second:    b,
		Result:    result,
		Display:   calculation.FormatResult(result),
	}, fiber.StatusOK)
}

// OperationsHandler возвращает список поддерживаемых операций
func (m *Module) OperationsHandler(c *fiber.Ctx) error {
	ops := calculation.Operations()
	response := models.OperationsResponse{
		Operations: make([]models.OperationInfo, 0, len(ops)),
	}

	for _, op := range ops {
		response.Operations = append(response.Operations, models.OperationInfo{
			Name:   op.String(),
			Symbol: op.Symbol(),
		})
	}

	return util.SendResponse(c, &response, fiber.StatusOK)
}
