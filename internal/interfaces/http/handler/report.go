package handler

import (
	"embed"
	"html/template"
	"net/http"

	reportapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/report"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var reportTemplates embed.FS

// ReportHandler renders the HTML reports
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
	templates     *template.Template
}

// NewReportHandler creates a new ReportHandler. Templates are embedded
// in the binary, so parse failures are programming errors and panic.
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		templates:     template.Must(template.ParseFS(reportTemplates, "templates/*.html")),
	}
}

// Orders renders the orders report. The status query parameter selects
// complete (closed) or incomplete (open) orders.
func (h *ReportHandler) Orders(c *gin.Context) {
	var status ordering.OrderStatus
	switch c.Query("status") {
	case "complete":
		status = ordering.OrderStatusClosed
	case "incomplete":
		status = ordering.OrderStatusOpen
	default:
		h.BadRequest(c, "Status must be complete or incomplete")
		return
	}

	report, err := h.reportService.OrdersByStatus(c.Request.Context(), status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.render(c, "orders.html", report)
}

// InexpensiveProducts renders the report of products priced at or
// below the ceiling
func (h *ReportHandler) InexpensiveProducts(c *gin.Context) {
	report, err := h.reportService.InexpensiveProducts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.render(c, "inexpensive_products.html", report)
}

func (h *ReportHandler) render(c *gin.Context, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		_ = c.Error(err)
	}
}
