package api

import (
	"errors"
	"net/http"
	"strconv"

	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type IncomeHandler struct {
	incomeQueries queries.IncomeQueries
}

func NewIncomeHandler(incomeQueries queries.IncomeQueries) *IncomeHandler {
	return &IncomeHandler{incomeQueries: incomeQueries}
}

// @Summary Income report
// @Description Aggregate income from active reservations, per resource and in total
// @Tags income
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start of time range (RFC3339)"
// @Param to query string false "End of time range (RFC3339)"
// @Success 200 {object} queries.IncomeReport
// @Failure 400 {object} map[string]string
// @Router /income [get]
func (h *IncomeHandler) GetReport(c *gin.Context) {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid 'from' timestamp", nil)
		return
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid 'to' timestamp", nil)
		return
	}

	report, err := h.incomeQueries.Report(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build income report", nil)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Popular resources
// @Description Rank resources by active reservation count
// @Tags income
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows (default 5)"
// @Success 200 {array} queries.ResourcePopularity
// @Router /income/popular [get]
func (h *IncomeHandler) GetPopularResources(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := h.incomeQueries.TopResources(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to rank resources", nil)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// @Summary Audit cross-check
// @Description Compare the append-only fee log against recomputed income
// @Tags income
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AuditCheck
// @Failure 500 {object} httperr.Response
// @Router /income/audit [get]
func (h *IncomeHandler) GetAuditTotal(c *gin.Context) {
	check, err := h.incomeQueries.VerifyAudit(c.Request.Context())
	switch {
	case errors.Is(err, queries.ErrAuditMismatch):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Income and fee log totals diverged", check)
	case err != nil:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cross-check fee log", nil)
	default:
		c.JSON(http.StatusOK, check)
	}
}
