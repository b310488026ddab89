package converter

import (
	dto "investsim_backend/internal/api/dto/result"
	"investsim_backend/internal/model"
)

func ToUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func ToGameResult(req dto.SaveResultRequest) model.GameResult {
	return model.GameResult{
		UserID:       req.UserID,
		InitialValue: req.InitialValue,
		FinalValue:   req.FinalValue,
		RoundsPlayed: req.RoundsPlayed,
		IsWinner:     req.IsWinner,
	}
}

func ToGameResultResponse(res model.GameResult) dto.GameResultResponse {
	return dto.GameResultResponse{
		ID:           res.ID,
		UserID:       res.UserID,
		InitialValue: res.InitialValue,
		FinalValue:   res.FinalValue,
		RoundsPlayed: res.RoundsPlayed,
		IsWinner:     res.IsWinner,
		CompletedAt:  res.CompletedAt,
	}
}

func ToGameResultResponses(results []model.GameResult) []dto.GameResultResponse {
	responses := make([]dto.GameResultResponse, len(results))
	for i, res := range results {
		responses[i] = ToGameResultResponse(res)
	}
	return responses
}

func ToLeaderboardResponse(entries []model.LeaderboardEntry) []dto.LeaderboardEntryResponse {
	responses := make([]dto.LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = dto.LeaderboardEntryResponse{
			User:   ToUserResponse(e.User),
			Result: ToGameResultResponse(e.Result),
		}
	}
	return responses
}
