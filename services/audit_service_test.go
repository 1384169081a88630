package services

import (
	"context"
	"testing"

	"hms/constants"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"

	"gorm.io/gorm"
)

func newTestAuditService(t *testing.T) (*AuditService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuditService(AuditServiceOptions{DB: db}), db
}

// seedAuditFixtures tạo một phòng với stay đang CHECKED_IN và các item
// catalog dùng trong audit, trả về stay id và map tên item -> id.
func seedAuditFixtures(t *testing.T, db *gorm.DB, itemNames ...string) (uint, map[string]uint) {
	t.Helper()

	category := models.ItemCategory{Name: "Room Inventory", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seeding category: %v", err)
	}

	itemIDs := make(map[string]uint, len(itemNames))
	for _, name := range itemNames {
		item := models.Item{Name: name, CategoryID: category.ID, UnitPrice: 10, IsActive: true}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seeding item %s: %v", name, err)
		}
		itemIDs[name] = item.ID
	}

	room := models.Room{RoomNumber: "101", Status: constants.RoomStatusOccupied}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seeding room: %v", err)
	}
	stay := models.RoomStay{RoomID: room.ID, GuestName: "Alice", Status: constants.StayStatusCheckedIn}
	if err := db.Create(&stay).Error; err != nil {
		t.Fatalf("seeding stay: %v", err)
	}

	return stay.ID, itemIDs
}

func TestCreateAuditPersistsRecordAndItems(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Towel", "Bathrobe")

	auditID, err := svc.CreateCheckInAudit(ctx, stayID, "Inspector", "all good", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
		{ItemID: itemIDs["Bathrobe"], Quantity: 1, ConditionStatus: "GOOD", Notes: "slightly worn"},
	})
	if err != nil {
		t.Fatalf("CreateCheckInAudit: %v", err)
	}

	var record models.AuditRecord
	if err := db.First(&record, auditID).Error; err != nil {
		t.Fatalf("reloading audit record: %v", err)
	}
	if record.AuditType != constants.AuditTypeCheckIn {
		t.Errorf("expected CHECK_IN type, got %q", record.AuditType)
	}
	if record.AuditorName != "Inspector" {
		t.Errorf("expected auditor 'Inspector', got %q", record.AuditorName)
	}

	var count int64
	db.Model(&models.AuditItem{}).Where("audit_record_id = ?", auditID).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 audit items, got %d", count)
	}
}

func TestCompareAuditsNoAudits(t *testing.T) {
	svc, db := newTestAuditService(t)
	stayID, _ := seedAuditFixtures(t, db)

	if _, err := svc.CompareAudits(context.Background(), stayID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("expected NotFound without any audits, got %v", err)
	}
}

func TestCompareAuditsOnlyCheckOut(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Towel")

	if _, err := svc.CreateCheckOutAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckOutAudit: %v", err)
	}

	// Không có audit check-in thì vẫn là NotFound
	if _, err := svc.CompareAudits(ctx, stayID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestCompareAuditsPendingCheckout(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Towel")

	if _, err := svc.CreateCheckInAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckInAudit: %v", err)
	}

	result, err := svc.CompareAudits(ctx, stayID)
	if err != nil {
		t.Fatalf("CompareAudits: %v", err)
	}

	pending, ok := result.(*dto.PendingComparison)
	if !ok {
		t.Fatalf("expected PendingComparison, got %T", result)
	}
	if pending.Status != constants.ComparisonPendingCheckout {
		t.Errorf("expected PENDING_CHECKOUT, got %q", pending.Status)
	}
	if pending.RoomStayID != stayID {
		t.Errorf("expected stay id %d, got %d", stayID, pending.RoomStayID)
	}
}

func TestCompareAuditsQuantityAndConditionChange(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Towel")

	if _, err := svc.CreateCheckInAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckInAudit: %v", err)
	}
	if _, err := svc.CreateCheckOutAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 1, ConditionStatus: "DAMAGED"},
	}); err != nil {
		t.Fatalf("CreateCheckOutAudit: %v", err)
	}

	result, err := svc.CompareAudits(ctx, stayID)
	if err != nil {
		t.Fatalf("CompareAudits: %v", err)
	}

	comparison, ok := result.(*dto.ComparisonResult)
	if !ok {
		t.Fatalf("expected ComparisonResult, got %T", result)
	}
	if len(comparison.Differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(comparison.Differences))
	}

	diff := comparison.Differences[0]
	if diff.ItemName != "Towel" {
		t.Errorf("expected item 'Towel', got %q", diff.ItemName)
	}
	if diff.CheckIn.Quantity != 2 || diff.CheckIn.ConditionStatus != "GOOD" {
		t.Errorf("unexpected check-in snapshot: %+v", diff.CheckIn)
	}
	if diff.CheckOut == nil || diff.CheckOut.Quantity != 1 || diff.CheckOut.ConditionStatus != "DAMAGED" {
		t.Errorf("unexpected check-out snapshot: %+v", diff.CheckOut)
	}
	if diff.QuantityDifference != 1 {
		t.Errorf("expected quantity difference 1, got %d", diff.QuantityDifference)
	}
}

func TestCompareAuditsMissingItemAtCheckout(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Bathrobe", "Towel")

	if _, err := svc.CreateCheckInAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Bathrobe"], Quantity: 3, ConditionStatus: "GOOD"},
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckInAudit: %v", err)
	}
	// Bathrobe biến mất hoàn toàn lúc trả phòng
	if _, err := svc.CreateCheckOutAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckOutAudit: %v", err)
	}

	result, err := svc.CompareAudits(ctx, stayID)
	if err != nil {
		t.Fatalf("CompareAudits: %v", err)
	}
	comparison := result.(*dto.ComparisonResult)

	if len(comparison.Differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(comparison.Differences))
	}
	diff := comparison.Differences[0]
	if diff.ItemName != "Bathrobe" {
		t.Errorf("expected missing item 'Bathrobe', got %q", diff.ItemName)
	}
	if diff.CheckOut != nil {
		t.Errorf("expected nil check-out snapshot, got %+v", diff.CheckOut)
	}
	if diff.QuantityDifference != 3 {
		t.Errorf("expected full-quantity loss of 3, got %d", diff.QuantityDifference)
	}
}

func TestCompareAuditsCleanAudit(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Towel")

	items := []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}
	if _, err := svc.CreateCheckInAudit(ctx, stayID, "Inspector", "", items); err != nil {
		t.Fatalf("CreateCheckInAudit: %v", err)
	}
	if _, err := svc.CreateCheckOutAudit(ctx, stayID, "Inspector", "", items); err != nil {
		t.Fatalf("CreateCheckOutAudit: %v", err)
	}

	result, err := svc.CompareAudits(ctx, stayID)
	if err != nil {
		t.Fatalf("CompareAudits: %v", err)
	}
	comparison := result.(*dto.ComparisonResult)

	if comparison.Differences == nil {
		t.Fatal("expected empty differences list, got nil")
	}
	if len(comparison.Differences) != 0 {
		t.Errorf("expected clean audit, got %d differences", len(comparison.Differences))
	}
}

func TestCompareAuditsIgnoresCheckoutOnlyItems(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Towel", "Slippers")

	if _, err := svc.CreateCheckInAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckInAudit: %v", err)
	}
	// Slippers chỉ xuất hiện lúc check-out nên không được báo cáo
	if _, err := svc.CreateCheckOutAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
		{ItemID: itemIDs["Slippers"], Quantity: 1, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckOutAudit: %v", err)
	}

	result, err := svc.CompareAudits(ctx, stayID)
	if err != nil {
		t.Fatalf("CompareAudits: %v", err)
	}
	comparison := result.(*dto.ComparisonResult)
	if len(comparison.Differences) != 0 {
		t.Errorf("expected checkout-only item to be ignored, got %d differences", len(comparison.Differences))
	}
}

func TestCompareAuditsDuplicateItemLastWriteWins(t *testing.T) {
	svc, db := newTestAuditService(t)
	ctx := context.Background()
	stayID, itemIDs := seedAuditFixtures(t, db, "Towel")

	// Item trùng trong cùng một audit: quan sát sau cùng thắng
	if _, err := svc.CreateCheckInAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 5, ConditionStatus: "GOOD"},
		{ItemID: itemIDs["Towel"], Quantity: 2, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckInAudit: %v", err)
	}
	if _, err := svc.CreateCheckOutAudit(ctx, stayID, "Inspector", "", []dto.AuditItemInput{
		{ItemID: itemIDs["Towel"], Quantity: 1, ConditionStatus: "GOOD"},
	}); err != nil {
		t.Fatalf("CreateCheckOutAudit: %v", err)
	}

	result, err := svc.CompareAudits(ctx, stayID)
	if err != nil {
		t.Fatalf("CompareAudits: %v", err)
	}
	comparison := result.(*dto.ComparisonResult)

	if len(comparison.Differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(comparison.Differences))
	}
	if diff := comparison.Differences[0]; diff.CheckIn.Quantity != 2 || diff.QuantityDifference != 1 {
		t.Errorf("expected last write to win (qty 2, diff 1), got %+v", diff)
	}
}
