package rest

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/present/rest/middleware"
	"github.com/causewayhq/causeway/internal/service"
	"github.com/causewayhq/causeway/internal/usecase"
)

type Handler struct {
	identity   *usecase.IdentityUsecase
	vetting    *usecase.VettingUsecase
	campaign   *usecase.CampaignUsecase
	donation   *usecase.DonationUsecase
	withdrawal *usecase.WithdrawalUsecase
	events     *service.EventService
}

func NewHandler(
	identity *usecase.IdentityUsecase,
	vetting *usecase.VettingUsecase,
	campaign *usecase.CampaignUsecase,
	donation *usecase.DonationUsecase,
	withdrawal *usecase.WithdrawalUsecase,
	events *service.EventService,
) *Handler {
	return &Handler{
		identity:   identity,
		vetting:    vetting,
		campaign:   campaign,
		donation:   donation,
		withdrawal: withdrawal,
		events:     events,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	e.POST("/api/v1/auth/register", h.handleRegister)
	e.POST("/api/v1/auth/login", h.handleLogin)
	e.POST("/api/v1/auth/verify-email", h.handleVerifyEmail)
	e.POST("/api/v1/auth/password-reset/request", h.handlePasswordResetRequest)
	e.POST("/api/v1/auth/password-reset/confirm", h.handlePasswordResetConfirm)
	e.GET("/api/v1/me", h.handleMe, auth.Require)
	e.GET("/api/v1/me/donations", h.handleMyDonations, auth.Require)

	e.POST("/api/v1/applications", h.handleSubmitApplication, auth.Require)
	e.GET("/api/v1/applications", h.handleListApplications, auth.RequireAdmin)
	e.GET("/api/v1/applications/:id", h.handleGetApplication, auth.RequireAdmin)
	e.POST("/api/v1/applications/:id/approve", h.handleApproveApplication, auth.RequireAdmin)
	e.POST("/api/v1/applications/:id/reject", h.handleRejectApplication, auth.RequireAdmin)
	e.GET("/api/v1/organizers", h.handleListOrganizers, auth.RequireAdmin)
	e.POST("/api/v1/organizers/:id/revoke", h.handleRevokeOrganizer, auth.RequireAdmin)
	e.POST("/api/v1/organizers/:id/reinstate", h.handleReinstateOrganizer, auth.RequireAdmin)

	e.POST("/api/v1/campaigns", h.handleCreateCampaign, auth.RequireOrganizer)
	e.GET("/api/v1/campaigns", h.handleListCampaigns)
	e.GET("/api/v1/campaigns/:id", h.handleGetCampaign)
	e.PATCH("/api/v1/campaigns/:id", h.handleUpdateCampaign, auth.Require)
	e.DELETE("/api/v1/campaigns/:id", h.handleDeleteCampaign, auth.Require)
	e.POST("/api/v1/campaigns/:id/approve", h.handleApproveCampaign, auth.RequireAdmin)
	e.POST("/api/v1/campaigns/:id/close", h.handleCloseCampaign, auth.Require)
	e.GET("/api/v1/campaigns/:id/donations", h.handleCampaignDonations, auth.Require)
	e.GET("/api/v1/campaigns/:id/stats", h.handleCampaignStats)
	e.GET("/api/v1/donations/stats", h.handleDonationStats, auth.RequireAdmin)

	e.POST("/api/v1/donations", h.handleCreateDonation)
	e.GET("/api/v1/donations/:id", h.handleGetDonation, auth.Require)
	e.POST("/api/v1/donations/:id/status", h.handleDonationStatus, auth.RequireAdmin)

	e.POST("/api/v1/withdrawals", h.handleCreateWithdrawal, auth.RequireOrganizer)
	e.GET("/api/v1/withdrawals", h.handleListWithdrawals, auth.Require)
	e.GET("/api/v1/withdrawals/:id", h.handleGetWithdrawal, auth.Require)
	e.POST("/api/v1/withdrawals/:id/approve", h.handleApproveWithdrawal, auth.RequireAdmin)
	e.POST("/api/v1/withdrawals/:id/reject", h.handleRejectWithdrawal, auth.RequireAdmin)
	e.POST("/api/v1/withdrawals/:id/paid", h.handleMarkWithdrawalPaid, auth.RequireAdmin)
}

func callerID(c echo.Context) string {
	id, _ := c.Request().Context().Value(domain.CallerIDCtxKey).(string)
	return id
}

func callerRole(c echo.Context) domain.Role {
	role, _ := c.Request().Context().Value(domain.CallerRoleCtxKey).(domain.Role)
	return role
}

func paging(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
