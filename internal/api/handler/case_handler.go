package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

// CaseHandler handles HTTP requests for case records. Structural validation
// happens here; the service performs the agent existence check afterwards,
// so a malformed agentId never reaches storage.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

// List handles GET /casos.
//
// @Summary      List all cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   caseResponse
// @Failure      401  {object}  errorResponse
// @Router       /casos [get]
func (h *CaseHandler) List(c echo.Context) error {
	cases, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseListResponse(cases))
}

// Get handles GET /casos/:id.
//
// @Summary      Get a case by id
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Case id"
// @Success      200  {object}  caseResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /casos/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	found, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseResponse(found))
}

// Create handles POST /casos. The referenced agent must exist.
//
// @Summary      Open a new case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      caseRequest  true  "Case fields"
// @Success      201   {object}  caseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /casos [post]
func (h *CaseHandler) Create(c echo.Context) error {
	in, err := h.bindCaseInput(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), *in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCaseResponse(created))
}

// Replace handles PUT /casos/:id.
//
// @Summary      Replace a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Case id"
// @Param        body  body      caseRequest  true  "Complete case fields"
// @Success      200   {object}  caseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /casos/{id} [put]
func (h *CaseHandler) Replace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	in, err := h.bindCaseInput(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Replace(c.Request().Context(), id, *in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseResponse(updated))
}

// Patch handles PATCH /casos/:id. A provided agentId is format-checked here
// and existence-checked by the service before entering the update set.
//
// @Summary      Partially update a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Case id"
// @Param        body  body      casePatchRequest  true  "Fields to change"
// @Success      200   {object}  caseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /casos/{id} [patch]
func (h *CaseHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	body, err := readBody(c)
	if err != nil {
		return err
	}
	fields, err := fieldSet(body)
	if err != nil {
		return err
	}
	if err := checkAllowed(fields, caseFields...); err != nil {
		return err
	}

	var req casePatchRequest
	if err := decodeJSON(body, &req); err != nil {
		return err
	}

	upd := ports.CaseUpdate{Title: req.Title, Description: req.Description}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return domain.FieldError(domain.KindMissingRequiredField, "title", "title is required")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return domain.FieldError(domain.KindMissingRequiredField, "description", "description is required")
	}
	if req.Status != nil {
		status := domain.CaseStatus(*req.Status)
		if !status.Valid() {
			return domain.FieldError(domain.KindInvalidEnum, "status", "status must be one of: open solved")
		}
		upd.Status = &status
	}
	if req.AgentID != nil {
		if *req.AgentID <= 0 {
			return domain.FieldError(domain.KindInvalidIdentifier, "agentId", "agentId must be a positive integer")
		}
		upd.AgentID = req.AgentID
	}

	updated, err := h.service.Patch(c.Request().Context(), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseResponse(updated))
}

// Delete handles DELETE /casos/:id.
//
// @Summary      Delete a case
// @Tags         cases
// @Security     BearerAuth
// @Param        id  path  int  true  "Case id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /casos/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// bindCaseInput decodes and validates a full case payload.
func (h *CaseHandler) bindCaseInput(c echo.Context) (*ports.CaseInput, error) {
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}
	fields, err := fieldSet(body)
	if err != nil {
		return nil, err
	}
	if _, ok := fields["id"]; ok {
		return nil, domain.FieldError(domain.KindImmutableField, "id", "id cannot be changed")
	}

	var req caseRequest
	if err := decodeJSON(body, &req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &ports.CaseInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.CaseStatus(req.Status),
		AgentID:     req.AgentID,
	}, nil
}
