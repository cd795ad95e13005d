package handlers

import (
	"errors"
	"strconv"

	"plate2share/domain"
	"plate2share/internal/api/presenters"
	"plate2share/internal/utils"
	"plate2share/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetDonations(c *fiber.Ctx) error
		GetDonationByID(c *fiber.Ctx) error
		UpdateDonationStatus(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error
		UploadDonationImage(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func donationErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDonationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidUnit),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrEmptyDonationImage),
		errors.Is(err, domain.ErrInvalidUpdateField),
		errors.Is(err, domain.ErrInvalidDonationStatus),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	donorID := c.Locals("user_id").(string)

	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	donation, err := h.donationService.CreateDonation(c.Context(), *req, donorID)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, donation, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = donation.DefaultDonationLimit
	}

	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	query := domain.DonationQuery{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Donor:    c.Query("donor"),
		SortBy:   c.Query("sortBy"),
		Limit:    limit,
		Skip:     skip,
	}

	donations, err := h.donationService.GetDonations(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationByID(c *fiber.Ctx) error {
	donation, err := h.donationService.GetDonationByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedGetDonation, err)
	}

	return presenters.SuccessResponse(c, donation, fiber.StatusOK, domain.MessageSuccessGetDonation)
}

func (h *donationHandler) UpdateDonationStatus(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	req := new(domain.UpdateDonationStatusRequest)
	if err := utils.DecodeStrict(c.Body(), req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonationStatus, domain.ErrInvalidUpdateField)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonationStatus, err)
	}

	donation, err := h.donationService.UpdateDonationStatus(c.Context(), c.Params("id"), *req, role)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedUpdateDonationStatus, err)
	}

	return presenters.SuccessResponse(c, donation, fiber.StatusOK, domain.MessageSuccessUpdateDonationStatus)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	if err := h.donationService.DeleteDonation(c.Context(), c.Params("id"), role); err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedDeleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) UploadDonationImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	donation, err := h.donationService.UploadDonationImage(c.Context(), c.Params("id"), userID, role, image)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedUploadDonationImage, err)
	}

	return presenters.SuccessResponse(c, donation, fiber.StatusOK, domain.MessageSuccessUploadDonationImage)
}
