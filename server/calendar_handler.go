package server

import (
	"net/http"
	"strconv"
	"time"

	"soundcheck/core/calendar"
	"soundcheck/core/eventtime"
	"soundcheck/core/social"
	"soundcheck/logger"
	"soundcheck/model"
)

// CalendarHandler 返回查看者已确认出席活动的月视图。
// 查询参数: year, month (1-12)，缺省为当前月；day+monthCode 组合为单日筛选。
func (h *APIHandler) CalendarHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	year := now.Year()
	monthIndex := int(now.Month()) - 1

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := q.Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			http.Error(w, "month must be 1-12", http.StatusBadRequest)
			return
		}
		monthIndex = m - 1
	}

	confirmed, err := h.confirmedEvents(r, userID)
	if err != nil {
		logger.Error("查询已确认活动失败", logger.String("viewerId", userID), logger.ErrorField(err))
		http.Error(w, "Failed to load calendar", http.StatusInternalServerError)
		return
	}

	var sel *calendar.DaySelection
	if v := q.Get("day"); v != "" {
		day, err := strconv.Atoi(v)
		code := q.Get("monthCode")
		if err != nil || eventtime.MonthIndex(code) < 0 {
			http.Error(w, "day filter requires a valid day and monthCode", http.StatusBadRequest)
			return
		}
		sel = &calendar.DaySelection{Day: day, Month: code}
	}

	writeSuccess(w, map[string]interface{}{
		"year":   year,
		"month":  eventtime.MonthCodes[monthIndex],
		"grid":   calendar.MonthGrid(year, monthIndex, confirmed),
		"events": calendar.Filter(confirmed, sel),
	})
}

// confirmedEvents 查询查看者标记 going 的活动并装饰展示字段
func (h *APIHandler) confirmedEvents(r *http.Request, userID string) ([]model.EventWithFriends, error) {
	records, err := h.attendanceRepo.ListGoingByUser(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.EventID)
	}

	events, err := h.eventRepo.ListEventsByIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.EventWithFriends, 0, len(events))
	for _, e := range events {
		dt := eventtime.Display(e.DateTime)
		out = append(out, model.EventWithFriends{
			Event:        e,
			Day:          dt.Day,
			Month:        dt.Month,
			Time:         dt.Time,
			FriendsGoing: nil,
			FriendsLabel: social.FriendsLabel(nil),
		})
	}
	return out, nil
}
