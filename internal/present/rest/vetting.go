package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/causewayhq/causeway"
	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/present/rest/presenter"
	"github.com/causewayhq/causeway/internal/service"
	"github.com/causewayhq/causeway/internal/usecase"
)

func (h *Handler) handleSubmitApplication(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	app, err := h.vetting.Submit(ctx, callerID(c), usecase.SubmitApplicationInput{
		OrganizationName: req.OrganizationName,
		Description:      req.Description,
	})
	if err != nil {
		return presenter.Error(c, err)
	}

	h.events.Publish(ctx, service.Event{
		Type:       service.EventApplicationSubmitted,
		ResourceID: app.ID,
		ActorID:    callerID(c),
	})

	return presenter.Created(c, app)
}

func (h *Handler) handleListApplications(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit := paging(c)

	var status *domain.ApplicationStatus
	if s := c.QueryParam("status"); s != "" {
		st := domain.ApplicationStatus(s)
		status = &st
	}

	apps, total, err := h.vetting.ListApplications(ctx, status, page, limit)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, causeway.Page[domain.OrganizerApplication]{
		Items: apps,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) handleGetApplication(c echo.Context) error {
	ctx := c.Request().Context()

	app, err := h.vetting.GetApplication(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, app)
}

func (h *Handler) handleApproveApplication(c echo.Context) error {
	ctx := c.Request().Context()

	app, err := h.vetting.Approve(ctx, c.Param("id"), callerID(c))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, app)
}

func (h *Handler) handleRejectApplication(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	app, err := h.vetting.Reject(ctx, c.Param("id"), callerID(c), req.Reason)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, app)
}

func (h *Handler) handleListOrganizers(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit := paging(c)

	filter := domain.OrganizerFilter(c.QueryParam("filter"))
	if filter == "" {
		filter = domain.OrganizerFilterActive
	}

	users, total, err := h.vetting.ListOrganizers(ctx, filter, page, limit)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, causeway.Page[domain.User]{
		Items: users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) handleRevokeOrganizer(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.RevokeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	user, err := h.vetting.Revoke(ctx, c.Param("id"), callerID(c), req.Reason)
	if err != nil {
		return presenter.Error(c, err)
	}

	h.events.Publish(ctx, service.Event{
		Type:       service.EventOrganizerRevoked,
		ResourceID: user.ID,
		ActorID:    callerID(c),
		Detail:     req.Reason,
	})

	return presenter.OK(c, user)
}

func (h *Handler) handleReinstateOrganizer(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.vetting.Reinstate(ctx, c.Param("id"), callerID(c))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, user)
}
