package usecase

import (
	"context"
	"errors"
	"fmt"

	"petconnect/internal/converter"
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context, inStockOnly bool) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int) error
	Purchase(ctx context.Context, req *dto.PurchaseRequest) (*dto.PurchaseResponse, error)
}

type productUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	productRepo      repository.ProductRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) ProductUsecase {
	return &productUsecase{
		db:               db,
		log:              log,
		productRepo:      productRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
	}

	if err := u.productRepo.Create(u.db.WithContext(ctx), product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetAll(ctx context.Context, inStockOnly bool) ([]dto.ProductResponse, error) {
	products, err := u.productRepo.FindAll(u.db.WithContext(ctx), inStockOnly)
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Update(ctx context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	db := u.db.WithContext(ctx)

	product, err := u.productRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.Image = req.Image

	if err := u.productRepo.Update(db, product); err != nil {
		u.log.Warnf("Failed to update product %d: %+v", id, err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

// Delete removes a catalog product and notifies every admin so removals from
// the storefront are visible.
func (u *productUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	product, err := u.productRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := u.productRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete product %d: %+v", id, err)
		return err
	}

	admins, err := u.userRepo.FindByRole(tx, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to find admins: %+v", err)
		return err
	}

	for _, admin := range admins {
		notification := &entity.Notification{
			UserID:  admin.ID,
			Title:   "Product Removed",
			Message: fmt.Sprintf("Product %q was removed from the marketplace.", product.Name),
			Type:    entity.NotificationTypeWarning,
		}
		if err := u.notificationRepo.Create(tx, notification); err != nil {
			u.log.Warnf("Failed to create notification: %+v", err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit product deletion: %+v", err)
		return err
	}

	return nil
}

// Purchase decrements stock for every line item inside one transaction. If
// any item is unknown or short on stock, no stock changes at all.
func (u *productUsecase) Purchase(ctx context.Context, req *dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	updated := make([]entity.Product, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := u.productRepo.FindByID(tx, item.ID)
		if err != nil {
			u.log.Warnf("Failed to find product %d: %+v", item.ID, err)
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("product %d: %w", item.ID, ErrProductNotFound)
		}

		if !product.HasStock(item.Quantity) {
			return nil, fmt.Errorf("%q: %w", product.Name, ErrInsufficientStock)
		}

		product.Stock -= item.Quantity
		if err := u.productRepo.Update(tx, product); err != nil {
			u.log.Warnf("Failed to update stock for product %d: %+v", item.ID, err)
			return nil, err
		}
		updated = append(updated, *product)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit purchase: %+v", err)
		return nil, err
	}

	return &dto.PurchaseResponse{Products: converter.ProductsToResponses(updated)}, nil
}
