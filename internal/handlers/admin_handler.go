package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofoundr_backend/internal/middleware"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/services"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.UserRoleAdmin))
	{
		admin.PUT("/:userId/status", h.UpdateUserStatus)
	}
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required" validate:"required,oneof=active suspended"`
	}
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.adminService.SetUserStatus(actorID, c.Param("userId"), models.UserStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}
