package dto

type AuditItemInput struct {
	ItemID          uint   `json:"itemId"`
	Quantity        int    `json:"quantity"`
	ConditionStatus string `json:"conditionStatus"`
	Notes           string `json:"notes"`
}

type CreateAuditRequest struct {
	RoomStayID  uint             `json:"roomStayId"`
	AuditorName string           `json:"auditorName"`
	Notes       string           `json:"notes"`
	Items       []AuditItemInput `json:"items"`
}

type CreateAuditResponse struct {
	Message string `json:"message"`
	AuditID uint   `json:"auditId"`
}

// AuditItemSnapshot là số lượng và tình trạng của một item tại thời điểm audit
type AuditItemSnapshot struct {
	Quantity        int    `json:"quantity"`
	ConditionStatus string `json:"conditionStatus"`
}

// AuditDifference là một dòng chênh lệch giữa audit check-in và check-out.
// CheckOut nil nghĩa là item biến mất hoàn toàn lúc trả phòng.
type AuditDifference struct {
	ItemName           string             `json:"itemName"`
	CheckIn            AuditItemSnapshot  `json:"checkIn"`
	CheckOut           *AuditItemSnapshot `json:"checkOut"`
	QuantityDifference int                `json:"quantityDifference"`
}

// ComparisonResult danh sách chênh lệch giữa hai audit của một stay.
// Differences rỗng nghĩa là audit sạch, không có gì để tính phí.
type ComparisonResult struct {
	RoomStayID  uint              `json:"roomStayId"`
	Differences []AuditDifference `json:"differences"`
}

// PendingComparison trả về khi stay mới chỉ có audit check-in
type PendingComparison struct {
	RoomStayID uint   `json:"roomStayId"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}
