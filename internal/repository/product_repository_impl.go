package repository

import (
	"errors"

	"petconnect/internal/domain/entity"
	domainRepo "petconnect/internal/domain/repository"

	"gorm.io/gorm"
)

type productRepository struct{}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindAll(db *gorm.DB, inStockOnly bool) ([]entity.Product, error) {
	var products []entity.Product

	query := db.Order("created_at DESC")
	if inStockOnly {
		query = query.Where("stock > 0")
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(db *gorm.DB, id int) (*entity.Product, error) {
	var product entity.Product
	err := db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(db *gorm.DB, product *entity.Product) error {
	return db.Save(product).Error
}

func (r *productRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.Product{}).Error
}
