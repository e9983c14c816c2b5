package httpapi

import (
	"net/http"

	"github.com/riskibarqy/school-tournament/internal/usecase"
)

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	state, err := h.tournamentService.State(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get tournament failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(state))
}

func (h *Handler) SetActiveCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetActiveCompetition")
	defer span.End()

	var req setActiveCompetitionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.tournamentService.SetActiveCompetition(ctx, req.Competition)
	if err != nil {
		h.logger.WarnContext(ctx, "set active competition failed", "competition", req.Competition, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(state))
}

func (h *Handler) ApplySchools(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplySchools")
	defer span.End()

	var req applySchoolsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.tournamentService.ApplyTeamList(ctx, req.SchoolsText, usecase.Confirmed(req.Confirm))
	if err != nil {
		h.logger.WarnContext(ctx, "apply schools failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(state))
}

func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Regenerate")
	defer span.End()

	var req confirmRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.tournamentService.Regenerate(ctx, usecase.Confirmed(req.Confirm))
	if err != nil {
		h.logger.WarnContext(ctx, "regenerate schedules failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(state))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Reset")
	defer span.End()

	var req confirmRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.tournamentService.Reset(ctx, usecase.Confirmed(req.Confirm))
	if err != nil {
		h.logger.WarnContext(ctx, "reset tournament failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(state))
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	schedule, err := h.tournamentService.Schedule(ctx, r.PathValue("competition"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleToDTO(schedule))
}

func (h *Handler) RecordScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordScore")
	defer span.End()

	comp := r.PathValue("competition")
	matchID := r.PathValue("matchID")

	var req recordScoreRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input, err := h.tournamentService.RecordScore(ctx, comp, matchID, req.HomeGoals, req.AwayGoals)
	if err != nil {
		h.logger.WarnContext(ctx, "record score failed", "competition", comp, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreToDTO(comp, matchID, input))
}

func (h *Handler) ClearScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearScore")
	defer span.End()

	comp := r.PathValue("competition")
	matchID := r.PathValue("matchID")

	if err := h.tournamentService.ClearScore(ctx, comp, matchID); err != nil {
		h.logger.WarnContext(ctx, "clear score failed", "competition", comp, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	standings, err := h.tournamentService.Standings(ctx, r.PathValue("competition"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(standings))
}
