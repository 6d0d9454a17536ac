package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/causewayhq/causeway"
	"github.com/causewayhq/causeway/internal/present/rest/presenter"
)

func (h *Handler) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	user, err := h.identity.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.Created(c, user)
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.LoginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	session, err := h.identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, session)
}

func (h *Handler) handleVerifyEmail(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	if err := h.identity.VerifyEmail(ctx, req.Email, req.Code); err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handlePasswordResetRequest(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	if err := h.identity.RequestPasswordReset(ctx, req.Email); err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handlePasswordResetConfirm(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.PasswordResetConfirm
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	if err := h.identity.ResetPassword(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleMe(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.identity.Me(ctx, callerID(c))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, user)
}
