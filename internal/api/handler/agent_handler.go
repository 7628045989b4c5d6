package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

// AgentHandler handles HTTP requests for agent records.
type AgentHandler struct {
	service ports.AgentService
}

func NewAgentHandler(service ports.AgentService) *AgentHandler {
	return &AgentHandler{service: service}
}

// List handles GET /agentes.
//
// @Summary      List all agents
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   agentResponse
// @Failure      401  {object}  errorResponse
// @Router       /agentes [get]
func (h *AgentHandler) List(c echo.Context) error {
	agents, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAgentListResponse(agents))
}

// Get handles GET /agentes/:id.
//
// @Summary      Get an agent by id
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Agent id"
// @Success      200  {object}  agentResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /agentes/{id} [get]
func (h *AgentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	agent, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAgentResponse(agent))
}

// Create handles POST /agentes.
//
// @Summary      Register a new agent
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      agentRequest  true  "Agent fields"
// @Success      201   {object}  agentResponse
// @Failure      400   {object}  errorResponse
// @Router       /agentes [post]
func (h *AgentHandler) Create(c echo.Context) error {
	in, err := h.bindAgentInput(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), *in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAgentResponse(created))
}

// Replace handles PUT /agentes/:id.
//
// @Summary      Replace an agent
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Agent id"
// @Param        body  body      agentRequest  true  "Complete agent fields"
// @Success      200   {object}  agentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /agentes/{id} [put]
func (h *AgentHandler) Replace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	in, err := h.bindAgentInput(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Replace(c.Request().Context(), id, *in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAgentResponse(updated))
}

// Patch handles PATCH /agentes/:id. Only the provided fields change; keys
// outside the allow-list are rejected and an empty patch is a no-op.
//
// @Summary      Partially update an agent
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Agent id"
// @Param        body  body      agentPatchRequest  true  "Fields to change"
// @Success      200   {object}  agentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /agentes/{id} [patch]
func (h *AgentHandler) Patch(c echo.Context) error {
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
	if err := checkAllowed(fields, agentFields...); err != nil {
		return err
	}

	var req agentPatchRequest
	if err := decodeJSON(body, &req); err != nil {
		return err
	}

	upd := ports.AgentUpdate{Name: req.Name, Role: req.Role}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return domain.FieldError(domain.KindMissingRequiredField, "name", "name is required")
		}
		if !domain.ValidName(*req.Name) {
			return domain.FieldError(domain.KindInvalidFormat, "name", "name must contain only letters and spaces")
		}
	}
	if req.Role != nil && strings.TrimSpace(*req.Role) == "" {
		return domain.FieldError(domain.KindMissingRequiredField, "role", "role is required")
	}
	if req.IncorporationDate != nil {
		d, ok := domain.ParseIncorporationDate(*req.IncorporationDate, time.Now())
		if !ok {
			return domain.FieldError(domain.KindInvalidDate, "incorporationDate", "incorporationDate must be a real YYYY-MM-DD date not in the future")
		}
		upd.IncorporationDate = &d
	}

	updated, err := h.service.Patch(c.Request().Context(), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAgentResponse(updated))
}

// Delete handles DELETE /agentes/:id. Cases referencing the agent are
// deleted with it.
//
// @Summary      Delete an agent and its cases
// @Tags         agents
// @Security     BearerAuth
// @Param        id  path  int  true  "Agent id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /agentes/{id} [delete]
func (h *AgentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// bindAgentInput decodes and validates a full agent payload. A provided "id"
// is rejected: the identifier is immutable and storage-assigned.
func (h *AgentHandler) bindAgentInput(c echo.Context) (*ports.AgentInput, error) {
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

	var req agentRequest
	if err := decodeJSON(body, &req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	// The validator already proved the date parses and is not in the future.
	date, _ := domain.ParseIncorporationDate(req.IncorporationDate, time.Now())
	return &ports.AgentInput{
		Name:              req.Name,
		Role:              req.Role,
		IncorporationDate: date,
	}, nil
}
