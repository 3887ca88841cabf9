package server

import (
	"encoding/json"
	"net/http"

	"soundcheck/cache"
	"soundcheck/logger"

	"github.com/gorilla/mux"
)

// FollowHandler 关注一个用户
func (h *APIHandler) FollowHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		FollowingID string `json:"followingId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FollowingID == "" {
		http.Error(w, "followingId is required", http.StatusBadRequest)
		return
	}

	if req.FollowingID == userID {
		http.Error(w, "Cannot follow yourself", http.StatusBadRequest)
		return
	}

	target, err := h.profileRepo.GetProfileByID(req.FollowingID)
	if err != nil {
		logger.Error("查询被关注用户失败", logger.ErrorField(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if target == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	if err := h.followRepo.Create(r.Context(), userID, req.FollowingID); err != nil {
		logger.Error("创建关注关系失败", logger.ErrorField(err))
		http.Error(w, "Failed to follow", http.StatusInternalServerError)
		return
	}

	// 好友出席聚合依赖关注集合，失效查看者缓存
	if err := cache.InvalidateFeed(r.Context(), userID); err != nil {
		logger.Warn("失效事件流缓存失败", logger.ErrorField(err))
	}

	writeSuccess(w, map[string]string{"followingId": req.FollowingID})
}

// UnfollowHandler 取消关注
func (h *APIHandler) UnfollowHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	followingID := mux.Vars(r)["id"]
	if err := h.followRepo.Delete(r.Context(), userID, followingID); err != nil {
		logger.Error("删除关注关系失败", logger.ErrorField(err))
		http.Error(w, "Failed to unfollow", http.StatusInternalServerError)
		return
	}

	if err := cache.InvalidateFeed(r.Context(), userID); err != nil {
		logger.Warn("失效事件流缓存失败", logger.ErrorField(err))
	}

	writeSuccess(w, map[string]string{"unfollowedId": followingID})
}

// ListFollowingHandler 获取当前用户关注的所有用户
func (h *APIHandler) ListFollowingHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	follows, err := h.followRepo.ListByFollower(r.Context(), userID)
	if err != nil {
		logger.Error("查询关注列表失败", logger.ErrorField(err))
		http.Error(w, "Failed to list follows", http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowingID)
	}

	names, err := h.profileRepo.DisplayNames(ids)
	if err != nil {
		logger.Error("查询显示名失败", logger.ErrorField(err))
		http.Error(w, "Failed to resolve names", http.StatusInternalServerError)
		return
	}

	type followEntry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]followEntry, 0, len(follows))
	for _, f := range follows {
		name, ok := names[f.FollowingID]
		if !ok {
			continue // profile deleted, drop silently
		}
		out = append(out, followEntry{ID: f.FollowingID, Name: name})
	}

	writeSuccess(w, out)
}
