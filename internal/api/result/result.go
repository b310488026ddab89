package result

import (
	"errors"
	dto "investsim_backend/internal/api/dto/result"
	"investsim_backend/internal/converter"
	"investsim_backend/internal/service"
	resultServ "investsim_backend/internal/service/result"
	"investsim_backend/pkg/req"
	"investsim_backend/pkg/resp"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.ResultService
}

type Handler struct {
	serv service.ResultService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// CreateUser Регистрирует пользователя по имени (без аутентификации)
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateUserRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.serv.CreateUser(r.Context(), payload.Username)
	if err != nil {
		if errors.Is(err, resultServ.ErrInvalidResult) {
			resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("CreateUser error:", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToUserResponse(*user))
}

// SaveResult Сохраняет итог завершённой партии
func (h *Handler) SaveResult(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SaveResultRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "Invalid game result data")
		return
	}

	gameResult := converter.ToGameResult(payload)

	saved, err := h.serv.SaveResult(r.Context(), &gameResult)
	if err != nil {
		if errors.Is(err, resultServ.ErrInvalidResult) || errors.Is(err, resultServ.ErrUnknownUser) {
			resp.WriteJSONError(w, http.StatusBadRequest, "Invalid game result data")
			return
		}
		log.Println("SaveResult error:", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "Failed to save game result")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResultResponse(*saved))
}

// Leaderboard Топ победителей по финальной стоимости портфеля
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.Leaderboard(r.Context())
	if err != nil {
		log.Println("Leaderboard error:", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries))
}

// UserResults История партий пользователя
func (h *Handler) UserResults(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	results, err := h.serv.UserResults(r.Context(), userID)
	if err != nil {
		log.Println("UserResults error:", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch game results")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResultResponses(results))
}
