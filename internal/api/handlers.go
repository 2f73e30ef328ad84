package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/limbo/lectio/internal/service"
	"github.com/limbo/lectio/pkg/entity"
	"github.com/limbo/lectio/pkg/httputil"
	"github.com/limbo/lectio/pkg/logger"
)

type CompleteChapterRequest struct {
	ReadingTimeSeconds int                `json:"reading_time_seconds"`
	Version            string             `json:"version"`
	Mode               entity.ReadingMode `json:"mode"`
}

type GetXPHistoryResponse struct {
	UserID string           `json:"uid"`
	Limit  int              `json:"limit"`
	Events []entity.XPEvent `json:"events"`
}

type ChapterUnlockedResponse struct {
	BookID   string `json:"book_id"`
	Number   int    `json:"number"`
	Unlocked bool   `json:"unlocked"`
}

var errInvalidBody = errors.New("invalid request body")

// writeServiceError logs the failure and answers with the status that matches the error category.
func writeServiceError(w http.ResponseWriter, lg *logger.Logger, op string, err error) {
	status := httputil.StatusFromError(err)
	if status >= http.StatusInternalServerError {
		lg.Error(op+" error: service error", "error", err)
	} else {
		lg.Warn(op+" error", "error", err)
	}
	switch status {
	case http.StatusBadRequest:
		httputil.WriteErrorResponse(w, status, "invalid request", err)
	case http.StatusNotFound:
		httputil.WriteErrorResponse(w, status, "not found", err)
	case http.StatusConflict:
		httputil.WriteErrorResponse(w, status, "conflict", err)
	case http.StatusServiceUnavailable:
		httputil.WriteErrorResponse(w, status, "storage temporarily unavailable, try again", nil)
	default:
		httputil.WriteErrorResponse(w, status, "internal error while "+op, nil)
	}
}

func (s *Server) authorized(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, *logger.Logger, bool) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, lg, false
	}
	return uid, lg, true
}

func (s *Server) requestCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

func (s *Server) InitProgress(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "init progress")
	if !ok {
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	progress, err := s.readingService.InitProgress(ctx, uid)
	if err != nil {
		writeServiceError(w, lg, "initializing progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, progress)
	lg.Info("progress initialized")
}

func (s *Server) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "get progress")
	if !ok {
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	progress, err := s.readingService.GetUserProgress(ctx, uid)
	if err != nil {
		writeServiceError(w, lg, "getting progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	lg.Info("progress provided")
}

func (s *Server) GetXPHistory(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "get xp history")
	if !ok {
		return
	}
	// 0 lets the service apply its default
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		limit = 0
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	events, err := s.readingService.GetXPHistory(ctx, uid, limit)
	if err != nil {
		writeServiceError(w, lg, "getting xp history", err)
		return
	}
	if events == nil {
		events = []entity.XPEvent{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetXPHistoryResponse{
		UserID: uid.String(),
		Limit:  limit,
		Events: events,
	})
	lg.Info("xp history provided")
}

func (s *Server) CompleteChapter(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "complete chapter")
	if !ok {
		return
	}
	chapterID, err := uuid.Parse(chi.URLParam(r, "chapterID"))
	if err != nil {
		lg.Warn("complete chapter error: invalid chapter id in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid chapter id in path value", nil)
		return
	}
	var req CompleteChapterRequest
	defer r.Body.Close()
	if err = httputil.ReadJSON(r.Body, &req); err != nil {
		lg.Warn("complete chapter error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errInvalidBody.Error(), nil)
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	reward, err := s.readingService.CompleteChapter(ctx, uid, &service.CompleteChapterRequest{
		ChapterID:          chapterID,
		ReadingTimeSeconds: req.ReadingTimeSeconds,
		Version:            req.Version,
		Mode:               req.Mode,
	})
	if err != nil {
		writeServiceError(w, lg, "completing chapter", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reward)
	lg.Info("chapter completed", "chapter_id", chapterID.String(), "xp", reward.XP.Total)
}

func (s *Server) RecordReadingTime(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "record reading time")
	if !ok {
		return
	}
	var req service.ReadingTimeRequest
	defer r.Body.Close()
	if err := httputil.ReadJSON(r.Body, &req); err != nil {
		lg.Warn("record reading time error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errInvalidBody.Error(), nil)
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	res, err := s.readingService.RecordReadingTime(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, lg, "recording reading time", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	lg.Info("reading time recorded", "seconds", req.Seconds)
}

func (s *Server) GetTodayProgress(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "get daily goal")
	if !ok {
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	view, err := s.readingService.GetTodayProgress(ctx, uid)
	if err != nil {
		writeServiceError(w, lg, "getting daily goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	lg.Info("daily goal provided")
}

func (s *Server) UpdateDailyGoal(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "update daily goal")
	if !ok {
		return
	}
	var req service.DailyGoalRequest
	defer r.Body.Close()
	if err := httputil.ReadJSON(r.Body, &req); err != nil {
		lg.Warn("update daily goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errInvalidBody.Error(), nil)
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	view, err := s.readingService.UpdateDailyGoal(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, lg, "updating daily goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	lg.Info("daily goal updated", "goal", req.Goal)
}

func (s *Server) GetDailyGoalStats(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "get daily goal stats")
	if !ok {
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 0 {
		days = 0
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	stats, err := s.readingService.GetDailyGoalStats(ctx, uid, days)
	if err != nil {
		writeServiceError(w, lg, "getting daily goal stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	lg.Info("daily goal stats provided")
}

func (s *Server) GetStreakStats(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "get streak")
	if !ok {
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	stats, err := s.readingService.GetStreakStats(ctx, uid)
	if err != nil {
		writeServiceError(w, lg, "getting streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	lg.Info("streak provided")
}

func (s *Server) SetStreakGoal(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "set streak goal")
	if !ok {
		return
	}
	var req service.StreakGoalRequest
	defer r.Body.Close()
	if err := httputil.ReadJSON(r.Body, &req); err != nil {
		lg.Warn("set streak goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errInvalidBody.Error(), nil)
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	stats, err := s.readingService.SetStreakGoal(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, lg, "setting streak goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	lg.Info("streak goal set", "goal", req.Goal)
}

func (s *Server) GetBookProgress(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "get book progress")
	if !ok {
		return
	}
	bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
	if err != nil {
		lg.Warn("get book progress error: invalid book id in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	view, err := s.readingService.GetBookProgress(ctx, uid, bookID)
	if err != nil {
		writeServiceError(w, lg, "getting book progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	lg.Info("book progress provided")
}

func (s *Server) IsChapterUnlocked(w http.ResponseWriter, r *http.Request) {
	uid, lg, ok := s.authorized(w, r, "check chapter unlock")
	if !ok {
		return
	}
	bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
	if err != nil {
		lg.Warn("check chapter unlock error: invalid book id in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		lg.Warn("check chapter unlock error: invalid chapter number in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid chapter number in path value", nil)
		return
	}
	ctx, cancel := s.requestCtx(r)
	defer cancel()
	unlocked, err := s.readingService.IsChapterUnlocked(ctx, uid, bookID, number)
	if err != nil {
		writeServiceError(w, lg, "checking chapter unlock", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChapterUnlockedResponse{
		BookID:   bookID.String(),
		Number:   number,
		Unlocked: unlocked,
	})
}
