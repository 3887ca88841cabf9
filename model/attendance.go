package model

import "time"

// AttendanceStatus 出席状态
type AttendanceStatus string

const (
	AttendanceGoing      AttendanceStatus = "going"
	AttendanceInterested AttendanceStatus = "interested"
)

// EventAttendance 用户对活动的出席记录，每个 (user, event) 唯一
type EventAttendance struct {
	ID        string           `json:"id" gorm:"primaryKey;size:36"`
	UserID    string           `json:"userId" gorm:"size:36;not null;uniqueIndex:uq_user_event"`
	EventID   string           `json:"eventId" gorm:"size:36;not null;uniqueIndex:uq_user_event;index"`
	Status    AttendanceStatus `json:"status" gorm:"size:16;not null"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TableName 指定表名
func (EventAttendance) TableName() string {
	return "event_attendance"
}
