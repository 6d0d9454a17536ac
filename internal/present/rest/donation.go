package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/causewayhq/causeway"
	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/present/rest/presenter"
	"github.com/causewayhq/causeway/internal/service"
	"github.com/causewayhq/causeway/internal/usecase"
)

func (h *Handler) handleCreateDonation(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	// callerID is empty for anonymous donors.
	donation, err := h.donation.Create(ctx, callerID(c), usecase.CreateDonationInput{
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Method:     req.Method,
		DonorEmail: req.DonorEmail,
		Message:    req.Message,
	})
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.Created(c, donation)
}

func (h *Handler) handleGetDonation(c echo.Context) error {
	ctx := c.Request().Context()

	donation, err := h.donation.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, donation)
}

func (h *Handler) handleDonationStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.DonationStatusRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	donation, err := h.donation.UpdateStatus(ctx, c.Param("id"), domain.DonationStatus(req.Status), req.PaymentReference)
	if err != nil {
		return presenter.Error(c, err)
	}

	if donation.Status == domain.DonationCompleted {
		h.events.Publish(ctx, service.Event{
			Type:       service.EventDonationCompleted,
			ResourceID: donation.ID,
		})
	}

	return presenter.OK(c, donation)
}

func (h *Handler) handleCampaignDonations(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit := paging(c)

	donations, total, err := h.donation.ListByCampaign(ctx, c.Param("id"), page, limit)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, causeway.Page[domain.Donation]{
		Items: donations,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) handleMyDonations(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit := paging(c)

	donations, total, err := h.donation.ListByDonor(ctx, callerID(c), page, limit)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, causeway.Page[domain.Donation]{
		Items: donations,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
