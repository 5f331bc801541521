package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secourse/clinic-scheduler/internal/api/metrics"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

// AccountHandler serves the account directory over HTTP.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /v1/accounts.
//
// @Summary      Create a patient, doctor or admin account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	acc, err := h.service.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(acc.Role)).Inc()
	return c.JSON(http.StatusCreated, toAccountResponse(acc))
}

// Get handles GET /v1/accounts/:id.
//
// @Summary      Show an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	acc, err := h.service.GetAccount(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(acc))
}

// List handles GET /v1/accounts.
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listAccountsResponse{Data: make([]accountResponse, 0, len(accounts))}
	for _, acc := range accounts {
		resp.Data = append(resp.Data, toAccountResponse(acc))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetField handles GET /v1/accounts/:id/:field.
//
// @Summary      Read one account field
// @Tags         accounts
// @Produce      json
// @Param        id     path      int     true  "Account id"
// @Param        field  path      string  true  "username, password, name or email"
// @Success      200    {object}  fieldResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /v1/accounts/{id}/{field} [get]
func (h *AccountHandler) GetField(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	field := c.Param("field")

	value, err := h.service.Field(c.Request().Context(), id, field)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fieldResponse{ID: id, Field: field, Value: value})
}

// UpdateField handles PUT /v1/accounts/:id/:field. Only the named field is
// validated.
//
// @Summary      Update one account field
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Account id"
// @Param        field  path      string              true  "username, password, name or email"
// @Param        body   body      updateFieldRequest  true  "New value"
// @Success      200    {object}  accountResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /v1/accounts/{id}/{field} [put]
func (h *AccountHandler) UpdateField(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	field := c.Param("field")

	var req updateFieldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	acc, err := h.service.UpdateField(c.Request().Context(), id, field, *req.Value)
	if err != nil {
		return err
	}

	metrics.AccountFieldUpdatesTotal.WithLabelValues(field).Inc()
	return c.JSON(http.StatusOK, toAccountResponse(acc))
}

// Delete handles DELETE /v1/accounts/:id. Appointments that reference the
// account are kept.
//
// @Summary      Delete an account
// @Tags         accounts
// @Param        id   path  int  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
