package server

import (
	"encoding/json"
	"net/http"

	"soundcheck/config"
	"soundcheck/logger"
	"soundcheck/repository"
)

// APIHandler 处理所有API请求
type APIHandler struct {
	profileRepo    repository.ProfileRepository
	eventRepo      repository.EventRepository
	followRepo     repository.FollowRepository
	attendanceRepo repository.AttendanceRepository
	cfg            *config.Config
}

// NewAPIHandler 创建新的API处理器
func NewAPIHandler(
	profileRepo repository.ProfileRepository,
	eventRepo repository.EventRepository,
	followRepo repository.FollowRepository,
	attendanceRepo repository.AttendanceRepository,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		profileRepo:    profileRepo,
		eventRepo:      eventRepo,
		followRepo:     followRepo,
		attendanceRepo: attendanceRepo,
		cfg:            cfg,
	}
}

// writeJSON 输出JSON响应
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("编码响应失败", logger.ErrorField(err))
	}
}

// writeSuccess 输出成功响应
func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}
