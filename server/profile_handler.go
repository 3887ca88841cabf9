package server

import (
	"encoding/json"
	"net/http"

	"soundcheck/core/songs"
	"soundcheck/logger"
	"soundcheck/model"

	"github.com/gorilla/mux"
)

// maxMySongs 个人主页歌单上限（调用方策略，编解码本身不限制）
const maxMySongs = 5

// GetMyProfileHandler 获取当前用户资料
func (h *APIHandler) GetMyProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileRepo.GetProfileByID(userID)
	if err != nil {
		logger.Error("获取用户资料失败", logger.ErrorField(err))
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, profile)
}

// GetProfileHandler 获取指定用户资料
func (h *APIHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	profile, err := h.profileRepo.GetProfileByID(id)
	if err != nil {
		logger.Error("获取用户资料失败", logger.String("id", id), logger.ErrorField(err))
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, profile)
}

// UpdateProfileRequest 资料编辑请求体。列表字段接受数组或 JSON 字符串。
type UpdateProfileRequest struct {
	Name                string           `json:"name"`
	FavoriteArtistNames model.StringList `json:"favoriteArtistNames"`
	SimilarArtists      model.StringList `json:"similarArtists"`
	Genres              model.StringList `json:"genres"`
	Bio                 string           `json:"bio"`
	InstagramHandle     string           `json:"instagramHandle"`
}

// UpdateProfileHandler 更新当前用户资料
func (h *APIHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.profileRepo.GetProfileByID(userID)
	if err != nil {
		logger.Error("获取用户资料失败", logger.ErrorField(err))
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	profile.FavoriteArtistNames = model.StringList(req.FavoriteArtistNames.Normalized())
	profile.SimilarArtists = model.StringList(req.SimilarArtists.Normalized())
	profile.Genres = model.StringList(req.Genres.Normalized())
	profile.Bio = req.Bio
	profile.InstagramHandle = req.InstagramHandle

	if err := h.profileRepo.UpdateProfile(profile); err != nil {
		logger.Error("更新用户资料失败", logger.ErrorField(err))
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, profile)
}

// GetMySongsHandler 获取当前用户的歌单（解码后的形式）
func (h *APIHandler) GetMySongsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileRepo.GetProfileByID(userID)
	if err != nil || profile == nil {
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, songs.Decode(profile.Posts))
}

// UpdateMySongsHandler 替换当前用户的歌单
func (h *APIHandler) UpdateMySongsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Songs []model.Song `json:"songs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Songs) > maxMySongs {
		req.Songs = req.Songs[:maxMySongs]
	}

	encoded := model.StringList(songs.Encode(req.Songs))
	if err := h.profileRepo.UpdatePosts(userID, encoded); err != nil {
		logger.Error("更新歌单失败", logger.ErrorField(err))
		http.Error(w, "Failed to update songs", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, songs.Decode(encoded))
}
