package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/getgradient/gradient/core/grading"
	"github.com/getgradient/gradient/core/session"
)

type gradingApi struct {
	deps *ServerDeps
}

func registerGradingAPI(g *echo.Group, deps *ServerDeps) {
	api := gradingApi{deps: deps}

	g.GET("/official-templates", api.templates)
	g.POST("/convert-scale", api.convertScale)
	g.POST("/gpa", api.computeGPA)
	g.POST("/parse-transcript", api.parseTranscript)
}

// Handlers

func (api *gradingApi) templates(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, TemplateListResponse{Templates: grading.BuiltinTemplates()})
}

func (api *gradingApi) convertScale(ctx echo.Context) error {
	var data ConversionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ConversionRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	converted, formula := grading.ConvertScale(data.Value, data.FromScale, data.ToScale, data.Method)
	return ctx.JSON(http.StatusOK, ConversionResponse{
		OriginalValue:  data.Value,
		ConvertedValue: grading.Round(null.Float64From(converted)).Float64,
		FromScale:      data.FromScale,
		ToScale:        data.ToScale,
		Method:         data.Method,
		Formula:        formula,
	})
}

// computeGPA runs the calculation engine over a gradebook without persisting
// anything, for anonymous or what-if use.
func (api *gradingApi) computeGPA(ctx echo.Context) error {
	var data session.SaveSession
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SaveSession")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	res := session.Compute(data.Semesters, data.Metadata, data.CustomMappings)
	return ctx.JSON(http.StatusOK, res)
}

func (api *gradingApi) parseTranscript(ctx echo.Context) error {
	var data ParseTranscriptRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ParseTranscriptRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, grading.ParseTranscriptText(data.Text))
}

type (
	ConversionRequest struct {
		Value     float64 `json:"value" validate:"min=0"`
		FromScale int     `json:"fromScale" validate:"scale"`
		ToScale   int     `json:"toScale" validate:"scale"`
		Method    string  `json:"method" validate:"omitempty,oneof=linear official"`
	}

	ConversionResponse struct {
		OriginalValue  float64 `json:"originalValue"`
		ConvertedValue float64 `json:"convertedValue"`
		FromScale      int     `json:"fromScale"`
		ToScale        int     `json:"toScale"`
		Method         string  `json:"method"`
		Formula        string  `json:"formula"`
	}

	TemplateListResponse struct {
		Templates []grading.Template `json:"templates"`
	}

	ParseTranscriptRequest struct {
		Text string `json:"text" validate:"required"`
	}
)

func (cr *ConversionRequest) Validate(validate *validator.Validate) error {
	if cr.Method == "" {
		cr.Method = grading.MethodLinear
	}
	return validate.Struct(cr)
}

func (pr *ParseTranscriptRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(pr)
}
