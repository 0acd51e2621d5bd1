package repository

import (
	"petconnect/internal/domain/entity"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindAll(db *gorm.DB, inStockOnly bool) ([]entity.Product, error)
	FindByID(db *gorm.DB, id int) (*entity.Product, error)
	Update(db *gorm.DB, product *entity.Product) error
	Delete(db *gorm.DB, id int) error
}
