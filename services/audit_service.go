package services

import (
	"context"
	"time"

	"hms/constants"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/services/logger"

	"gorm.io/gorm"
)

// AuditService ghi nhận và so sánh audit tình trạng item của một stay.
// Mỗi stay có tối đa một audit CHECK_IN và một audit CHECK_OUT; phía
// gọi chịu trách nhiệm không ghi trùng loại.
type AuditService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AuditServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuditService(opts AuditServiceOptions) *AuditService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuditService{
		db:     opts.DB,
		logger: l,
	}
}

// CreateCheckInAudit ghi snapshot item lúc nhận phòng
func (s *AuditService) CreateCheckInAudit(ctx context.Context, roomStayID uint, auditorName, notes string, items []dto.AuditItemInput) (uint, error) {
	return s.createAudit(ctx, constants.AuditTypeCheckIn, roomStayID, auditorName, notes, items)
}

// CreateCheckOutAudit ghi snapshot item lúc trả phòng
func (s *AuditService) CreateCheckOutAudit(ctx context.Context, roomStayID uint, auditorName, notes string, items []dto.AuditItemInput) (uint, error) {
	return s.createAudit(ctx, constants.AuditTypeCheckOut, roomStayID, auditorName, notes, items)
}

// createAudit insert một AuditRecord và toàn bộ AuditItem của nó trong
// một transaction, lỗi giữa chừng thì rollback cả cụm.
func (s *AuditService) createAudit(ctx context.Context, auditType string, roomStayID uint, auditorName, notes string, items []dto.AuditItemInput) (uint, error) {
	record := models.AuditRecord{
		RoomStayID:  roomStayID,
		AuditType:   auditType,
		AuditorName: auditorName,
		AuditTime:   time.Now(),
		Notes:       notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return apperrors.Internal("Failed to create audit", err)
		}

		for _, item := range items {
			auditItem := models.AuditItem{
				AuditRecordID:   record.ID,
				ItemID:          item.ItemID,
				Quantity:        item.Quantity,
				ConditionStatus: item.ConditionStatus,
				Notes:           item.Notes,
			}
			if err := tx.Create(&auditItem).Error; err != nil {
				return apperrors.Internal("Failed to create audit", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("%s audit %d recorded for stay %d (%d items)", auditType, record.ID, roomStayID, len(items))
	return record.ID, nil
}

type auditItemRow struct {
	AuditType       string
	ItemID          uint
	ItemName        string
	Quantity        int
	ConditionStatus string
	Notes           string
}

// CompareAudits tính chênh lệch giữa audit check-in và check-out của
// một stay. Kết quả là *dto.PendingComparison khi chưa có audit
// check-out, ngược lại là *dto.ComparisonResult.
func (s *AuditService) CompareAudits(ctx context.Context, roomStayID uint) (interface{}, error) {
	var auditTypes []string
	if err := s.db.WithContext(ctx).Model(&models.AuditRecord{}).
		Where("room_stay_id = ?", roomStayID).
		Distinct().
		Pluck("audit_type", &auditTypes).Error; err != nil {
		return nil, apperrors.Internal("Failed to compare audits", err)
	}

	if !containsString(auditTypes, constants.AuditTypeCheckIn) {
		return nil, apperrors.NewNotFound("No check-in audit found for this room stay")
	}
	if !containsString(auditTypes, constants.AuditTypeCheckOut) {
		return &dto.PendingComparison{
			RoomStayID: roomStayID,
			Status:     constants.ComparisonPendingCheckout,
			Message:    "Check-out audit has not been performed yet",
		}, nil
	}

	var rows []auditItemRow
	if err := s.db.WithContext(ctx).Table("audit_records").
		Select("audit_records.audit_type, audit_items.item_id, items.name AS item_name, audit_items.quantity, audit_items.condition_status, audit_items.notes").
		Joins("JOIN audit_items ON audit_items.audit_record_id = audit_records.id").
		Joins("JOIN items ON items.id = audit_items.item_id").
		Where("audit_records.room_stay_id = ?", roomStayID).
		Order("audit_records.audit_time").
		Order("audit_items.id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Internal("Failed to compare audits", err)
	}

	// Chia quan sát theo itemId; item trùng trong cùng một audit thì
	// lần ghi sau thắng.
	checkInItems := make(map[uint]auditItemRow)
	checkOutItems := make(map[uint]auditItemRow)
	var checkInOrder []uint

	for _, row := range rows {
		if row.AuditType == constants.AuditTypeCheckIn {
			if _, seen := checkInItems[row.ItemID]; !seen {
				checkInOrder = append(checkInOrder, row.ItemID)
			}
			checkInItems[row.ItemID] = row
		} else {
			checkOutItems[row.ItemID] = row
		}
	}

	// Diff chỉ chạy trên tập item của check-in: item chỉ xuất hiện lúc
	// check-out không được báo cáo.
	differences := []dto.AuditDifference{}
	for _, itemID := range checkInOrder {
		checkIn := checkInItems[itemID]
		checkOut, found := checkOutItems[itemID]

		if found {
			if checkIn.Quantity != checkOut.Quantity || checkIn.ConditionStatus != checkOut.ConditionStatus {
				differences = append(differences, dto.AuditDifference{
					ItemName: checkIn.ItemName,
					CheckIn: dto.AuditItemSnapshot{
						Quantity:        checkIn.Quantity,
						ConditionStatus: checkIn.ConditionStatus,
					},
					CheckOut: &dto.AuditItemSnapshot{
						Quantity:        checkOut.Quantity,
						ConditionStatus: checkOut.ConditionStatus,
					},
					QuantityDifference: checkIn.Quantity - checkOut.Quantity,
				})
			}
			continue
		}

		// Item biến mất hoàn toàn lúc trả phòng: tính là mất toàn bộ
		differences = append(differences, dto.AuditDifference{
			ItemName: checkIn.ItemName,
			CheckIn: dto.AuditItemSnapshot{
				Quantity:        checkIn.Quantity,
				ConditionStatus: checkIn.ConditionStatus,
			},
			CheckOut:           nil,
			QuantityDifference: checkIn.Quantity,
		})
	}

	return &dto.ComparisonResult{
		RoomStayID:  roomStayID,
		Differences: differences,
	}, nil
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
