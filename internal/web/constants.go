package web

const (
	IndexRoute      = "/"
	StyleRoute      = "/static/style.css"
	CalculateRoute  = "/api/v1/calculate"
	OperationsRoute = "/api/v1/operations"
	HealthRoute     = "/health"

	FieldFirst  = "first"
	FieldSecond = "second"
	FieldAction = "action"
	ActionClear = "clear"

	IndexTemplate = "index.html"
	StyleSheet    = "style.css"

	StaticDirEnv = "STATIC_DIR"
	AppNameEnv   = "APP_NAME"
)
