package game

import (
	dto "investsim_backend/internal/api/dto/game"
	"investsim_backend/internal/converter"
	"investsim_backend/internal/service"
	"investsim_backend/pkg/req"
	"investsim_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Restrictions Ограничения аллокаций для раунда
func (h *Handler) Restrictions(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid round")
		return
	}

	restrictions := h.serv.Restrictions(round)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRestrictionsResponse(round, restrictions))
}

// Validate Проверка аллокаций: сначала базовая форма, затем ограничения раунда
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ValidateRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// Пока не пройдена базовая проверка, проверять ограничения бессмысленно
	precheck := h.serv.Precheck(payload.Investments, payload.Allocations)
	if !precheck.IsValid {
		resp.WriteJSONResponse(w, http.StatusOK, converter.ToValidateResponse(*precheck))
		return
	}

	result, err := h.serv.Validate(payload.Investments, payload.Allocations, payload.Round)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToValidateResponse(*result))
}

// DrawEvent Розыгрыш рыночного события раунда
func (h *Handler) DrawEvent(w http.ResponseWriter, r *http.Request) {
	event := h.serv.DrawMarketEvent()

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMarketEventResponse(event))
}

// Calculate Расчёт доходности раунда
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CalculateRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.CalculateReturns(
		payload.Investments,
		payload.Allocations,
		payload.PortfolioValue,
		payload.Round,
		converter.ToMarketEvent(payload.MarketEvent),
	)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCalculateResponse(*result))
}

// NewGame Начальное состояние партии
func (h *Handler) NewGame(w http.ResponseWriter, r *http.Request) {
	state := h.serv.NewGameState()

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(state))
}

// Advance Применение итога раунда и переход к следующему состоянию партии
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AdvanceRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if payload.CurrentRound < 1 {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid round")
		return
	}

	next := h.serv.AdvanceRound(converter.ToGameState(payload), payload.TotalReturn)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(next))
}
