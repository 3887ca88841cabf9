package server

import (
	"net/http"

	"soundcheck/core/match"
	"soundcheck/logger"
	"soundcheck/model"
)

// ArtistMatchesHandler 按查看者的喜爱艺人列表为艺人打分并分组
func (h *APIHandler) ArtistMatchesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	viewer, err := h.profileRepo.GetProfileByID(userID)
	if err != nil {
		logger.Error("获取用户资料失败", logger.ErrorField(err))
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	if viewer == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	artists, err := h.profileRepo.ListArtists()
	if err != nil {
		logger.Error("查询艺人列表失败", logger.ErrorField(err))
		http.Error(w, "Failed to list artists", http.StatusInternalServerError)
		return
	}

	// 自己是艺人时不参与对自己的打分
	if viewer.UserType == model.UserTypeArtist {
		filtered := artists[:0]
		for _, a := range artists {
			if a.ID != viewer.ID {
				filtered = append(filtered, a)
			}
		}
		artists = filtered
	}

	top, explore := match.Rank(viewer.FavoriteArtistNames, artists)

	writeSuccess(w, map[string]interface{}{
		"topMatches":  top,
		"exploreMore": explore,
	})
}
