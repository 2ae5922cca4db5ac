package api

import (
	"errors"
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	authCommands commands.AuthCommands
	adminQueries queries.AdminQueries
}

func NewAdminHandler(authCommands commands.AuthCommands, adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{
		authCommands: authCommands,
		adminQueries: adminQueries,
	}
}

// @Summary Create admin account
// @Description Register a new admin user (superadmin only)
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAdminRequest true "Admin request"
// @Success 201 {object} queries.AdminView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admins [post]
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req reqdto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.authCommands.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Username already taken",
			})
		case errors.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Password is too weak",
			})
		case errors.Is(err, commands.ErrInvalidAdminRole):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid role",
			})
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid username",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List admin accounts
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AdminView
// @Router /admins [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	views, err := h.adminQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Activate or deactivate an admin account
// @Tags admins
// @Accept json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admins/{id}/active [put]
func (h *AdminHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid admin ID format",
		})
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.authCommands.SetAdminActive(c.Request.Context(), id, *req.Active); err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Admin not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
