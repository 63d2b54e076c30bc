package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agbanzy/apcconnctv2-sub002/internal/api/handler/v1/response"
	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
)

type GeographyService interface {
	ListStates(ctx context.Context) ([]domain.State, error)
	ListSenatorialDistricts(ctx context.Context, stateID uint) ([]domain.SenatorialDistrict, error)
	ListLGAs(ctx context.Context, stateID uint) ([]domain.LGA, error)
	ListWards(ctx context.Context, lgaID uint) ([]domain.Ward, error)
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// GeographyHandler exposes the reference data behind scope selection.
type GeographyHandler struct {
	svc GeographyService
}

func NewGeographyHandler(svc GeographyService) *GeographyHandler {
	return &GeographyHandler{
		svc: svc,
	}
}

// HandleListStates godoc
// @Summary      List all states
// @Tags         geography
// @Produce      json
// @Success      200  {array}   domain.State
// @Failure      500  {object}  response.Err
// @Router       /geography/states [get]
// @Security     BearerAuth
func (h *GeographyHandler) HandleListStates(ctx *gin.Context) {
	states, err := h.svc.ListStates(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListStates -> h.svc.ListStates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, states)
}

// HandleListSenatorialDistricts godoc
// @Summary      List a state's senatorial districts
// @Tags         geography
// @Produce      json
// @Param        stateID  path      int  true  "state ID"
// @Success      200      {array}   domain.SenatorialDistrict
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /geography/states/{stateID}/senatorial-districts [get]
// @Security     BearerAuth
func (h *GeographyHandler) HandleListSenatorialDistricts(ctx *gin.Context) {
	stateID, err := parseIDParam(ctx, "stateID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	districts, err := h.svc.ListSenatorialDistricts(ctx.Request.Context(), stateID)
	if err != nil {
		err = fmt.Errorf("HandleListSenatorialDistricts -> h.svc.ListSenatorialDistricts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, districts)
}

// HandleListLGAs godoc
// @Summary      List a state's local government areas
// @Tags         geography
// @Produce      json
// @Param        stateID  path      int  true  "state ID"
// @Success      200      {array}   domain.LGA
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /geography/states/{stateID}/lgas [get]
// @Security     BearerAuth
func (h *GeographyHandler) HandleListLGAs(ctx *gin.Context) {
	stateID, err := parseIDParam(ctx, "stateID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	lgas, err := h.svc.ListLGAs(ctx.Request.Context(), stateID)
	if err != nil {
		err = fmt.Errorf("HandleListLGAs -> h.svc.ListLGAs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, lgas)
}

// HandleListWards godoc
// @Summary      List an LGA's wards
// @Tags         geography
// @Produce      json
// @Param        lgaID  path      int  true  "LGA ID"
// @Success      200    {array}   domain.Ward
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /geography/lgas/{lgaID}/wards [get]
// @Security     BearerAuth
func (h *GeographyHandler) HandleListWards(ctx *gin.Context) {
	lgaID, err := parseIDParam(ctx, "lgaID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wards, err := h.svc.ListWards(ctx.Request.Context(), lgaID)
	if err != nil {
		err = fmt.Errorf("HandleListWards -> h.svc.ListWards -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, wards)
}

// HandleListParties godoc
// @Summary      List active political parties
// @Tags         geography
// @Produce      json
// @Success      200  {array}   domain.Party
// @Failure      500  {object}  response.Err
// @Router       /parties [get]
// @Security     BearerAuth
func (h *GeographyHandler) HandleListParties(ctx *gin.Context) {
	parties, err := h.svc.ListParties(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListParties -> h.svc.ListParties -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, parties)
}
