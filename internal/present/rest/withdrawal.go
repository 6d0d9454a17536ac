package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/causewayhq/causeway"
	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/present/rest/presenter"
	"github.com/causewayhq/causeway/internal/service"
	"github.com/causewayhq/causeway/internal/usecase"
)

func (h *Handler) handleCreateWithdrawal(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.CreateWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	withdrawal, err := h.withdrawal.Create(ctx, callerID(c), usecase.CreateWithdrawalInput{
		CampaignID:    req.CampaignID,
		Amount:        req.Amount,
		PayoutMethod:  req.PayoutMethod,
		PayoutDetails: req.PayoutDetails,
	})
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.Created(c, withdrawal)
}

func (h *Handler) handleListWithdrawals(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit := paging(c)

	var status *domain.WithdrawalStatus
	if s := c.QueryParam("status"); s != "" {
		st := domain.WithdrawalStatus(s)
		status = &st
	}

	withdrawals, total, err := h.withdrawal.List(ctx, callerID(c), callerRole(c), status, page, limit)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, causeway.Page[domain.WithdrawalRequest]{
		Items: withdrawals,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) handleGetWithdrawal(c echo.Context) error {
	ctx := c.Request().Context()

	withdrawal, err := h.withdrawal.Get(ctx, c.Param("id"), callerID(c), callerRole(c))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, withdrawal)
}

func (h *Handler) handleApproveWithdrawal(c echo.Context) error {
	ctx := c.Request().Context()

	withdrawal, err := h.withdrawal.Approve(ctx, c.Param("id"), callerID(c))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, withdrawal)
}

func (h *Handler) handleRejectWithdrawal(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.WithdrawalReviewRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	withdrawal, err := h.withdrawal.Reject(ctx, c.Param("id"), callerID(c), req.Message)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, withdrawal)
}

func (h *Handler) handleMarkWithdrawalPaid(c echo.Context) error {
	ctx := c.Request().Context()

	var req causeway.MarkPaidRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	withdrawal, err := h.withdrawal.MarkPaid(ctx, c.Param("id"), callerID(c), req.PaymentReference)
	if err != nil {
		return presenter.Error(c, err)
	}

	h.events.Publish(ctx, service.Event{
		Type:       service.EventWithdrawalPaid,
		ResourceID: withdrawal.ID,
		ActorID:    callerID(c),
	})

	return presenter.OK(c, withdrawal)
}
