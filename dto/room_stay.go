package dto

type CheckInRequest struct {
	RoomID    uint   `json:"roomId"`
	GuestName string `json:"guestName"`
	Notes     string `json:"notes"`
}

type CheckInResponse struct {
	Message    string `json:"message"`
	RoomStayID uint   `json:"roomStayId"`
}

type CheckOutResponse struct {
	Message string `json:"message"`
}

// StayEvent được broadcast qua websocket khi check-in / check-out thành công
type StayEvent struct {
	Event      string `json:"event"`
	RoomID     uint   `json:"roomId"`
	RoomStayID uint   `json:"roomStayId"`
	RoomStatus string `json:"roomStatus"`
}
