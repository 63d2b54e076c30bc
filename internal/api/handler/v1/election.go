package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agbanzy/apcconnctv2-sub002/internal/api/handler/v1/request"
	"github.com/agbanzy/apcconnctv2-sub002/internal/api/handler/v1/response"
	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
	"github.com/agbanzy/apcconnctv2-sub002/internal/service"
)

const dateLayout = "02/01/2006"

type ElectionService interface {
	CreateElection(ctx context.Context, input service.CreateElectionInput) (domain.Election, error)
	BulkGenerate(ctx context.Context, input service.BulkGenerateInput) (domain.BulkOutcome, error)
	GetElection(ctx context.Context, id uint) (domain.Election, error)
	ListElections(ctx context.Context, filter domain.ElectionFilter) ([]domain.Election, error)
	UpdateElection(ctx context.Context, id uint, update domain.ElectionUpdate) (domain.Election, error)
	BulkSetStatus(ctx context.Context, ids []uint, status domain.ElectionStatus) (domain.BulkStatusOutcome, error)
	DeleteElection(ctx context.Context, id uint) error
	AddCandidate(ctx context.Context, electionID uint, input service.AddCandidateInput) (domain.Candidate, error)
	ListCandidates(ctx context.Context, electionID uint) ([]domain.Candidate, error)
	RemoveCandidate(ctx context.Context, electionID, candidateID uint) error
	CastVote(ctx context.Context, electionID, candidateID, voterID uint, integrityTag string) (domain.Vote, error)
	GetResults(ctx context.Context, electionID uint) (domain.Election, error)
}

type ElectionHandler struct {
	svc ElectionService
}

func NewElectionHandler(svc ElectionService) *ElectionHandler {
	return &ElectionHandler{
		svc: svc,
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}
	return uint(id), nil
}

// HandleCreateElection godoc
// @Summary      Create a single election
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateElectionRequest  true  "election details"
// @Success      201      {object}  domain.Election
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /elections [post]
// @Security     BearerAuth
func (h *ElectionHandler) HandleCreateElection(ctx *gin.Context) {
	var req request.CreateElectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	electionDate, err := time.Parse(dateLayout, req.ElectionDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid election date: %v", err)))
		return
	}

	created, err := h.svc.CreateElection(ctx.Request.Context(), service.CreateElectionInput{
		Position:     domain.Position(req.Position),
		ElectionYear: req.ElectionYear,
		ElectionDate: electionDate,
		Status:       domain.ElectionStatus(req.Status),
		ScopeID:      req.ScopeID,
		Title:        req.Title,
		Description:  req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPosition),
			errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrScopeRequired):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrScopeUnitNotFound):
			response.RenderErr(ctx, response.ErrNotFound("scope unit", "id", req.ScopeID))
		case errors.Is(err, service.ErrElectionExists):
			response.RenderErr(ctx, response.ErrConflict("DUPLICATE_ELECTION", err))
		default:
			err = fmt.Errorf("HandleCreateElection -> h.svc.CreateElection -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleBulkGenerate godoc
// @Summary      Bulk-generate elections across scope units
// @Description  Creates one election per resolved scope unit. Units with an existing election for the position and year are skipped; the response reports per-unit outcomes.
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkGenerateRequest  true  "bulk generation template"
// @Success      200      {object}  domain.BulkOutcome
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /elections/bulk [post]
// @Security     BearerAuth
func (h *ElectionHandler) HandleBulkGenerate(ctx *gin.Context) {
	var req request.BulkGenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	electionDate, err := time.Parse(dateLayout, req.ElectionDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid election date: %v", err)))
		return
	}

	positions := make([]domain.Position, len(req.Positions))
	for i, p := range req.Positions {
		positions[i] = domain.Position(p)
	}

	selections := make(map[domain.Position]domain.Selection, len(req.Selections))
	for p, sel := range req.Selections {
		selections[domain.Position(p)] = domain.Selection{All: sel.All, IDs: sel.IDs}
	}

	outcome, err := h.svc.BulkGenerate(ctx.Request.Context(), service.BulkGenerateInput{
		Positions:    positions,
		ElectionYear: req.ElectionYear,
		ElectionDate: electionDate,
		Status:       domain.ElectionStatus(req.Status),
		Selections:   selections,
		Title:        req.Title,
		Description:  req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPosition),
			errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrEmptySelection):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleBulkGenerate -> h.svc.BulkGenerate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, outcome)
}

// HandleListElections godoc
// @Summary      List elections
// @Tags         elections
// @Produce      json
// @Param        position  query     string  false  "filter by position"
// @Param        year      query     int     false  "filter by election year"
// @Param        status    query     string  false  "filter by status"
// @Success      200       {array}   domain.Election
// @Failure      500       {object}  response.Err
// @Router       /elections [get]
// @Security     BearerAuth
func (h *ElectionHandler) HandleListElections(ctx *gin.Context) {
	year, _ := strconv.Atoi(ctx.Query("year"))

	elections, err := h.svc.ListElections(ctx.Request.Context(), domain.ElectionFilter{
		Position: domain.Position(ctx.Query("position")),
		Year:     year,
		Status:   domain.ElectionStatus(ctx.Query("status")),
	})
	if err != nil {
		err = fmt.Errorf("HandleListElections -> h.svc.ListElections -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, elections)
}

// HandleGetElection godoc
// @Summary      Get one election with its candidates
// @Tags         elections
// @Produce      json
// @Param        electionID  path      int  true  "election ID"
// @Success      200         {object}  domain.Election
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID} [get]
// @Security     BearerAuth
func (h *ElectionHandler) HandleGetElection(ctx *gin.Context) {
	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	election, err := h.svc.GetElection(ctx.Request.Context(), electionID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "id", electionID))
			return
		}

		err = fmt.Errorf("HandleGetElection -> h.svc.GetElection -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, election)
}

// HandleUpdateElection godoc
// @Summary      Update election fields
// @Description  Updates title, description or status. Status changes must follow the lifecycle: upcoming to ongoing to completed, cancellation from upcoming or ongoing.
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        electionID  path      int                            true  "election ID"
// @Param        request     body      request.UpdateElectionRequest  true  "fields to update"
// @Success      200         {object}  domain.Election
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID} [patch]
// @Security     BearerAuth
func (h *ElectionHandler) HandleUpdateElection(ctx *gin.Context) {
	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateElectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	update := domain.ElectionUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.ElectionStatus(*req.Status)
		update.Status = &status
	}

	updated, err := h.svc.UpdateElection(ctx.Request.Context(), electionID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrElectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("election", "id", electionID))
		case errors.Is(err, service.ErrInvalidStatus):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrInvalidTransition):
			response.RenderErr(ctx, response.ErrConflict("INVALID_TRANSITION", err))
		default:
			err = fmt.Errorf("HandleUpdateElection -> h.svc.UpdateElection -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleBulkStatus godoc
// @Summary      Transition many elections at once
// @Description  Applies the lifecycle check per election and reports a per-id outcome instead of failing the whole batch.
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkStatusRequest  true  "election ids and target status"
// @Success      200      {object}  domain.BulkStatusOutcome
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /elections/bulk-status [patch]
// @Security     BearerAuth
func (h *ElectionHandler) HandleBulkStatus(ctx *gin.Context) {
	var req request.BulkStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	outcome, err := h.svc.BulkSetStatus(ctx.Request.Context(), req.ElectionIDs, domain.ElectionStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleBulkStatus -> h.svc.BulkSetStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, outcome)
}

// HandleDeleteElection godoc
// @Summary      Delete an election and all of its candidates and votes
// @Description  Irreversible. The admin UI must confirm before calling.
// @Tags         elections
// @Produce      json
// @Param        electionID  path  int  true  "election ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID} [delete]
// @Security     BearerAuth
func (h *ElectionHandler) HandleDeleteElection(ctx *gin.Context) {
	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteElection(ctx.Request.Context(), electionID); err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "id", electionID))
			return
		}

		err = fmt.Errorf("HandleDeleteElection -> h.svc.DeleteElection -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAddCandidate godoc
// @Summary      Register a candidate on an election
// @Description  The party must be active. A running mate is stored only for presidential and governorship elections and is otherwise dropped.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        electionID  path      int                          true  "election ID"
// @Param        request     body      request.AddCandidateRequest  true  "candidate details"
// @Success      201         {object}  domain.Candidate
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/candidates [post]
// @Security     BearerAuth
func (h *ElectionHandler) HandleAddCandidate(ctx *gin.Context) {
	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.AddCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	candidate, err := h.svc.AddCandidate(ctx.Request.Context(), electionID, service.AddCandidateInput{
		Name:        req.Name,
		PartyID:     req.PartyID,
		RunningMate: req.RunningMate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrElectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("election", "id", electionID))
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "id", req.PartyID))
		case errors.Is(err, service.ErrPartyInactive):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleAddCandidate -> h.svc.AddCandidate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, candidate)
}

// HandleListCandidates godoc
// @Summary      List an election's candidates
// @Tags         candidates
// @Produce      json
// @Param        electionID  path      int  true  "election ID"
// @Success      200         {array}   domain.Candidate
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/candidates [get]
// @Security     BearerAuth
func (h *ElectionHandler) HandleListCandidates(ctx *gin.Context) {
	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	candidates, err := h.svc.ListCandidates(ctx.Request.Context(), electionID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "id", electionID))
			return
		}

		err = fmt.Errorf("HandleListCandidates -> h.svc.ListCandidates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

// HandleRemoveCandidate godoc
// @Summary      Remove a candidate from an election
// @Description  Refused once the candidate has votes; historical tallies only disappear through election deletion.
// @Tags         candidates
// @Produce      json
// @Param        electionID   path  int  true  "election ID"
// @Param        candidateID  path  int  true  "candidate ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/candidates/{candidateID} [delete]
// @Security     BearerAuth
func (h *ElectionHandler) HandleRemoveCandidate(ctx *gin.Context) {
	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	candidateID, err := parseIDParam(ctx, "candidateID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.RemoveCandidate(ctx.Request.Context(), electionID, candidateID); err != nil {
		switch {
		case errors.Is(err, service.ErrCandidateNotFound):
			response.RenderErr(ctx, response.ErrNotFound("candidate", "id", candidateID))
		case errors.Is(err, service.ErrCandidateHasVotes):
			response.RenderErr(ctx, response.ErrConflict("CANDIDATE_HAS_VOTES", err))
		default:
			err = fmt.Errorf("HandleRemoveCandidate -> h.svc.RemoveCandidate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCastVote godoc
// @Summary      Cast a ballot
// @Description  Records one vote for the authenticated member. A voter casts at most one ballot per election; a second attempt returns a DUPLICATE_VOTE conflict, distinct from NOT_VOTABLE.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        electionID  path      int                      true  "election ID"
// @Param        request     body      request.CastVoteRequest  true  "chosen candidate"
// @Success      201         {object}  response.VoteResponse
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/vote [post]
// @Security     BearerAuth
func (h *ElectionHandler) HandleCastVote(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CastVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	vote, err := h.svc.CastVote(ctx.Request.Context(), electionID, req.CandidateID, actor.UserID, req.IntegrityTag)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrElectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("election", "id", electionID))
		case errors.Is(err, service.ErrCandidateNotFound):
			response.RenderErr(ctx, response.ErrNotFound("candidate", "id", req.CandidateID))
		case errors.Is(err, service.ErrNotVotable):
			response.RenderErr(ctx, response.ErrConflict("NOT_VOTABLE", err))
		case errors.Is(err, service.ErrDuplicateVote):
			response.RenderErr(ctx, response.ErrConflict("DUPLICATE_VOTE", err))
		default:
			err = fmt.Errorf("HandleCastVote -> h.svc.CastVote -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.VoteResponse{
		ElectionID:  vote.ElectionID,
		CandidateID: vote.CandidateID,
		CastAt:      vote.CastAt.Format(time.RFC3339),
		Message:     "vote recorded",
	})
}

// HandleGetResults godoc
// @Summary      Get an election's tally
// @Description  Candidates ordered by descending votes; ties break on creation order so repeated reads are stable.
// @Tags         votes
// @Produce      json
// @Param        electionID  path      int  true  "election ID"
// @Success      200         {object}  response.ResultsResponse
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/results [get]
// @Security     BearerAuth
func (h *ElectionHandler) HandleGetResults(ctx *gin.Context) {
	electionID, err := parseIDParam(ctx, "electionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	election, err := h.svc.GetResults(ctx.Request.Context(), electionID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "id", electionID))
			return
		}

		err = fmt.Errorf("HandleGetResults -> h.svc.GetResults -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewResultsResponse(election))
}
