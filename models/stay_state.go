package models

import (
	"errors"
	"time"

	"hms/constants"
)

// StayState định nghĩa interface cho các trạng thái của room stay.
// CHECKED_OUT là trạng thái cuối, không quay lại được.
type StayState interface {
	CheckOut(stay *RoomStay, at time.Time) error
}

// CheckedInState khách đang ở trong phòng
type CheckedInState struct{}

func (s *CheckedInState) CheckOut(stay *RoomStay, at time.Time) error {
	stay.Status = constants.StayStatusCheckedOut
	stay.CheckOutTime = &at
	return nil
}

// CheckedOutState khách đã trả phòng
type CheckedOutState struct{}

func (s *CheckedOutState) CheckOut(stay *RoomStay, at time.Time) error {
	return errors.New("Guest is not checked in")
}

// GetStayState trả về state tương ứng với trạng thái stay
func GetStayState(status string) StayState {
	switch status {
	case constants.StayStatusCheckedIn:
		return &CheckedInState{}
	default:
		return &CheckedOutState{}
	}
}
