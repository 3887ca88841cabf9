package server

import (
	"encoding/json"
	"net/http"
	"time"

	"soundcheck/cache"
	"soundcheck/core/eventtime"
	"soundcheck/core/social"
	"soundcheck/logger"
	"soundcheck/model"

	"github.com/gorilla/mux"
)

// feedLimit 事件流单次返回的活动数上限
const feedLimit = 50

// CreateEventRequest 创建活动请求体
type CreateEventRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DateTime    time.Time        `json:"dateTime"`
	Location    string           `json:"location"`
	VenueType   string           `json:"venueType"`
	ArtistIDs   model.StringList `json:"artistIds"`
}

// CreateEventHandler 创建活动，仅艺人账号可用
func (h *APIHandler) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
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
	if profile.UserType != model.UserTypeArtist {
		http.Error(w, "Only artists can create events", http.StatusForbidden)
		return
	}

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.DateTime.IsZero() || req.Location == "" {
		http.Error(w, "Title, dateTime and location are required", http.StatusBadRequest)
		return
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		DateTime:    req.DateTime,
		Location:    req.Location,
		VenueType:   req.VenueType,
		CreatedBy:   userID,
		ArtistIDs:   model.StringList(req.ArtistIDs.Normalized()),
	}

	eventID, err := h.eventRepo.CreateEvent(event)
	if err != nil {
		logger.Error("创建活动失败", logger.ErrorField(err))
		http.Error(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	logger.Info("活动创建成功", logger.String("eventId", eventID), logger.String("createdBy", userID))
	writeSuccess(w, event)
}

// GetEventHandler 获取单个活动详情
func (h *APIHandler) GetEventHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	event, err := h.eventRepo.GetEventByID(id)
	if err != nil {
		logger.Error("获取活动失败", logger.String("id", id), logger.ErrorField(err))
		http.Error(w, "Failed to get event", http.StatusInternalServerError)
		return
	}
	if event == nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, event)
}

// FeedHandler 聚合事件流：即将到来的活动 + 好友出席信息，按好友数降序
func (h *APIHandler) FeedHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if feed, ok := cache.GetFeed(r.Context(), userID); ok {
		writeSuccess(w, feed)
		return
	}

	feed, err := h.buildFeed(r, userID)
	if err != nil {
		logger.Error("聚合事件流失败", logger.String("viewerId", userID), logger.ErrorField(err))
		http.Error(w, "Failed to build feed", http.StatusInternalServerError)
		return
	}

	if err := cache.SetFeed(r.Context(), userID, feed); err != nil {
		logger.Warn("写入事件流缓存失败", logger.ErrorField(err))
	}

	writeSuccess(w, feed)
}

// buildFeed 重新计算查看者的事件流
func (h *APIHandler) buildFeed(r *http.Request, viewerID string) ([]model.EventWithFriends, error) {
	events, err := h.eventRepo.ListUpcomingEvents(time.Now(), feedLimit)
	if err != nil {
		return nil, err
	}

	eventIDs := make([]string, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}

	follows, err := h.followRepo.ListByFollower(r.Context(), viewerID)
	if err != nil {
		return nil, err
	}

	records, err := h.attendanceRepo.ListGoingByEventIDs(r.Context(), eventIDs)
	if err != nil {
		return nil, err
	}

	followingIDs := make([]string, 0, len(follows))
	for _, f := range follows {
		followingIDs = append(followingIDs, f.FollowingID)
	}
	names, err := h.profileRepo.DisplayNames(followingIDs)
	if err != nil {
		return nil, err
	}

	attendance := make([]social.AttendanceRow, 0, len(records))
	for _, rec := range records {
		attendance = append(attendance, social.AttendanceRow{EventID: rec.EventID, UserID: rec.UserID})
	}

	friendsByEvent := social.FriendsGoing(viewerID, events, attendance, follows, names)

	feed := make([]model.EventWithFriends, 0, len(events))
	for _, e := range events {
		friends := friendsByEvent[e.ID]
		dt := eventtime.Display(e.DateTime)
		feed = append(feed, model.EventWithFriends{
			Event:        e,
			Day:          dt.Day,
			Month:        dt.Month,
			Time:         dt.Time,
			FriendsGoing: friends,
			FriendsLabel: social.FriendsLabel(friends),
		})
	}

	social.SortByFriendCount(feed)
	return feed, nil
}

// SetAttendanceHandler 标记出席状态
func (h *APIHandler) SetAttendanceHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	eventID := mux.Vars(r)["id"]
	event, err := h.eventRepo.GetEventByID(eventID)
	if err != nil {
		logger.Error("获取活动失败", logger.String("id", eventID), logger.ErrorField(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if event == nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	status := model.AttendanceStatus(req.Status)
	if status != model.AttendanceGoing && status != model.AttendanceInterested {
		http.Error(w, "status must be going or interested", http.StatusBadRequest)
		return
	}

	if err := h.attendanceRepo.Set(r.Context(), userID, eventID, status); err != nil {
		logger.Error("写入出席状态失败", logger.ErrorField(err))
		http.Error(w, "Failed to set attendance", http.StatusInternalServerError)
		return
	}

	// 关注者的缓存靠 TTL 过期，这里只失效自己的
	if err := cache.InvalidateFeed(r.Context(), userID); err != nil {
		logger.Warn("失效事件流缓存失败", logger.ErrorField(err))
	}

	writeSuccess(w, map[string]string{"eventId": eventID, "status": string(status)})
}

// DeleteAttendanceHandler 清除出席状态
func (h *APIHandler) DeleteAttendanceHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	eventID := mux.Vars(r)["id"]
	if err := h.attendanceRepo.Delete(r.Context(), userID, eventID); err != nil {
		logger.Error("删除出席状态失败", logger.ErrorField(err))
		http.Error(w, "Failed to delete attendance", http.StatusInternalServerError)
		return
	}

	if err := cache.InvalidateFeed(r.Context(), userID); err != nil {
		logger.Warn("失效事件流缓存失败", logger.ErrorField(err))
	}

	writeSuccess(w, map[string]string{"eventId": eventID})
}
