package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/causewayhq/causeway"
	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/present/rest/presenter"
	"github.com/causewayhq/causeway/internal/service"
	"github.com/causewayhq/causeway/internal/usecase"
)

func (h *Handler) handleCreateCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	campaign, err := h.campaign.Create(ctx, callerID(c), usecase.CreateCampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Target:      req.Target,
	})
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.Created(c, campaign)
}

func (h *Handler) handleListCampaigns(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit := paging(c)

	filter := domain.CampaignFilter{
		OwnerID: c.QueryParam("owner"),
		Search:  c.QueryParam("search"),
	}

	campaigns, total, err := h.campaign.List(ctx, filter, callerID(c), callerRole(c), page, limit)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, causeway.Page[domain.Campaign]{
		Items: campaigns,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) handleGetCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	campaign, err := h.campaign.Get(ctx, c.Param("id"), callerID(c), callerRole(c))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, campaign)
}

func (h *Handler) handleUpdateCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	campaign, err := h.campaign.Update(ctx, c.Param("id"), callerID(c), callerRole(c), domain.CampaignPatch{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Target:      req.Target,
	})
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, campaign)
}

func (h *Handler) handleDeleteCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.campaign.Delete(ctx, c.Param("id"), callerID(c), callerRole(c))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.NoContent(c)
}

func (h *Handler) handleApproveCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	campaign, err := h.campaign.Approve(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}

	h.events.Publish(ctx, service.Event{
		Type:       service.EventCampaignApproved,
		ResourceID: campaign.ID,
		ActorID:    callerID(c),
	})

	return presenter.OK(c, campaign)
}

func (h *Handler) handleCloseCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.CloseCampaignRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	campaign, err := h.campaign.Close(ctx, c.Param("id"), callerID(c), callerRole(c), req.Reason)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, campaign)
}

func (h *Handler) handleCampaignStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.donation.Stats(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, stats)
}

func (h *Handler) handleDonationStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.donation.Stats(ctx, c.QueryParam("campaign"))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, stats)
}
