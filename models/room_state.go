package models

import (
	"errors"

	"hms/constants"
)

// RoomState định nghĩa interface cho các trạng thái phòng. Chuyển trạng
// thái được validate trước khi commit transaction nên có thể unit test
// mà không cần database.
type RoomState interface {
	CheckIn(room *Room) error
	CheckOut(room *Room) error
}

// AvailableState phòng trống, sẵn sàng nhận khách
type AvailableState struct{}

func (s *AvailableState) CheckIn(room *Room) error {
	room.Status = constants.RoomStatusOccupied
	return nil
}

func (s *AvailableState) CheckOut(room *Room) error {
	return errors.New("Room has no active stay")
}

// OccupiedState phòng đang có khách
type OccupiedState struct{}

func (s *OccupiedState) CheckIn(room *Room) error {
	return errors.New("Room is not available")
}

func (s *OccupiedState) CheckOut(room *Room) error {
	room.Status = constants.RoomStatusAvailable
	return nil
}

// GetRoomState trả về state tương ứng với trạng thái phòng. Trạng thái
// không xác định được coi như đang có khách để chặn check-in.
func GetRoomState(status string) RoomState {
	switch status {
	case constants.RoomStatusAvailable:
		return &AvailableState{}
	default:
		return &OccupiedState{}
	}
}
