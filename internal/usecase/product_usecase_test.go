package usecase

import (
	"context"
	"errors"
	"testing"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductUsecase(t *testing.T) (ProductUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewProductUsecase(
		db,
		newTestLogger(),
		repository.NewProductRepository(),
		repository.NewUserRepository(),
		repository.NewNotificationRepository(),
	)
	return uc, db
}

func TestPurchaseDecrementsStock(t *testing.T) {
	uc, db := newProductUsecase(t)
	p1 := seedProduct(t, db, 10)
	p2 := seedProduct(t, db, 5)

	result, err := uc.Purchase(context.Background(), &dto.PurchaseRequest{
		Items: []dto.PurchaseItem{
			{ID: p1.ID, Quantity: 3},
			{ID: p2.ID, Quantity: 5},
		},
	})
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if len(result.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(result.Products))
	}

	var got entity.Product
	if err := db.First(&got, p1.ID).Error; err != nil {
		t.Fatalf("failed to reload product: %v", err)
	}
	if got.Stock != 7 {
		t.Errorf("p1.Stock = %d, want 7", got.Stock)
	}
	var got2 entity.Product
	if err := db.First(&got2, p2.ID).Error; err != nil {
		t.Fatalf("failed to reload product: %v", err)
	}
	if got2.Stock != 0 {
		t.Errorf("p2.Stock = %d, want 0", got2.Stock)
	}
}

func TestPurchaseIsAllOrNothing(t *testing.T) {
	uc, db := newProductUsecase(t)
	p1 := seedProduct(t, db, 10)
	p2 := seedProduct(t, db, 2)

	_, err := uc.Purchase(context.Background(), &dto.PurchaseRequest{
		Items: []dto.PurchaseItem{
			{ID: p1.ID, Quantity: 3},
			{ID: p2.ID, Quantity: 5},
		},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("Purchase() error = %v, want ErrInsufficientStock", err)
	}

	// the first item's stock is untouched after the rollback
	var got entity.Product
	if err := db.First(&got, p1.ID).Error; err != nil {
		t.Fatalf("failed to reload product: %v", err)
	}
	if got.Stock != 10 {
		t.Errorf("p1.Stock = %d, want 10", got.Stock)
	}
}

func TestPurchaseUnknownProduct(t *testing.T) {
	uc, db := newProductUsecase(t)
	p1 := seedProduct(t, db, 10)

	_, err := uc.Purchase(context.Background(), &dto.PurchaseRequest{
		Items: []dto.PurchaseItem{
			{ID: p1.ID, Quantity: 1},
			{ID: 99999, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("Purchase() error = %v, want ErrProductNotFound", err)
	}

	var got entity.Product
	if err := db.First(&got, p1.ID).Error; err != nil {
		t.Fatalf("failed to reload product: %v", err)
	}
	if got.Stock != 10 {
		t.Errorf("p1.Stock = %d, want 10", got.Stock)
	}
}

func TestGetAllHidesZeroStockForPublicView(t *testing.T) {
	uc, db := newProductUsecase(t)
	seedProduct(t, db, 4)
	seedProduct(t, db, 0)

	public, err := uc.GetAll(context.Background(), true)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(public) != 1 {
		t.Errorf("public view len = %d, want 1", len(public))
	}

	all, err := uc.GetAll(context.Background(), false)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("full view len = %d, want 2", len(all))
	}
}

func TestDeleteProductNotifiesAdmins(t *testing.T) {
	uc, db := newProductUsecase(t)
	admin1 := seedUser(t, db, entity.RoleAdmin)
	admin2 := seedUser(t, db, entity.RoleAdmin)
	regular := seedUser(t, db, entity.RoleUser)
	product := seedProduct(t, db, 3)

	if err := uc.Delete(context.Background(), product.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var count int64
	db.Model(&entity.Notification{}).Where("user_id IN ?", []any{admin1.ID, admin2.ID}).Count(&count)
	if count != 2 {
		t.Errorf("admin notifications = %d, want 2", count)
	}

	db.Model(&entity.Notification{}).Where("user_id = ?", regular.ID).Count(&count)
	if count != 0 {
		t.Errorf("non-admin notifications = %d, want 0", count)
	}
}

func TestUpdateProduct(t *testing.T) {
	uc, db := newProductUsecase(t)
	product := seedProduct(t, db, 3)

	updated, err := uc.Update(context.Background(), product.ID, &dto.UpdateProductRequest{
		Name:  "Deluxe Chew Toy",
		Price: decimal.NewFromInt(25),
		Stock: 8,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Deluxe Chew Toy" || updated.Stock != 8 {
		t.Errorf("Update() = %+v, want name and stock applied", updated)
	}
}

func TestGetProductNotFound(t *testing.T) {
	uc, _ := newProductUsecase(t)

	if _, err := uc.GetByID(context.Background(), 424242); err != ErrProductNotFound {
		t.Errorf("GetByID() error = %v, want ErrProductNotFound", err)
	}
}
