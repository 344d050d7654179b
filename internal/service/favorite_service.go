package service

import (
	"github.com/optomarket/optomarket-api/internal/logger"
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"

	"gorm.io/gorm"
)

// FavoriteService maintains per-user favorites plus the denormalized
// IsFavorite/IsFavourite flags on products and suppliers. The favorite rows
// stay authoritative; the flags are caches kept in step inside the same
// transaction as the row change.
type FavoriteService struct {
	db        *gorm.DB
	favorites repository.FavoriteRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
}

// NewFavoriteService creates the service.
func NewFavoriteService(
	db *gorm.DB,
	favorites repository.FavoriteRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
) *FavoriteService {
	return &FavoriteService{
		db:        db,
		favorites: favorites,
		products:  products,
		suppliers: suppliers,
	}
}

// List returns a user's favorites.
func (s *FavoriteService) List(userID uint) ([]models.Favorite, error) {
	return s.favorites.ListByUser(userID)
}

// Add records a favorite for (product, optional supplier). Inside one
// transaction the row is inserted, the product flag is raised, and the
// supplier flag is raised when a supplier is named.
func (s *FavoriteService) Add(userID, productID uint, supplierID *uint) (*models.Favorite, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if supplierID != nil {
		supplier, err := s.suppliers.GetByID(*supplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, ErrSupplierNotFound
		}
	}

	favorite := &models.Favorite{
		UserID:     userID,
		ProductID:  productID,
		SupplierID: supplierID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		favRepo := s.favorites.WithTx(tx)
		existing, err := favRepo.Get(userID, productID, supplierID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateFavorite
		}
		if err := favRepo.Create(favorite); err != nil {
			return err
		}
		if err := s.products.WithTx(tx).UpdateFavoriteFlag(productID, true); err != nil {
			return err
		}
		if supplierID != nil {
			if err := s.suppliers.WithTx(tx).UpdateFavouriteFlag(*supplierID, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove deletes a favorite and re-derives both flags from the remaining
// rows, still in one transaction. The flags are global: they drop only when
// no favorite row from any user references the product or supplier.
func (s *FavoriteService) Remove(userID, productID uint, supplierID *uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		favRepo := s.favorites.WithTx(tx)
		existing, err := favRepo.Get(userID, productID, supplierID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrFavoriteNotFound
		}
		if err := favRepo.Delete(existing.ID); err != nil {
			return err
		}

		productCount, err := favRepo.CountForProduct(productID)
		if err != nil {
			return err
		}
		if err := s.products.WithTx(tx).UpdateFavoriteFlag(productID, productCount > 0); err != nil {
			return err
		}
		if supplierID != nil {
			supplierCount, err := favRepo.CountForSupplier(*supplierID)
			if err != nil {
				return err
			}
			if err := s.suppliers.WithTx(tx).UpdateFavouriteFlag(*supplierID, supplierCount > 0); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReconcileFlags re-derives every denormalized flag from the favorite rows.
// Run periodically by the worker to repair drift.
func (s *FavoriteService) ReconcileFlags() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		favRepo := s.favorites.WithTx(tx)

		productIDs, err := favRepo.ProductIDsWithFavorites()
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).
			Where("is_favorite = ?", true).
			Not(map[string]interface{}{"id": idsOrZero(productIDs)}).
			Update("is_favorite", false).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Model(&models.Product{}).
				Where("id IN ? AND is_favorite = ?", productIDs, false).
				Update("is_favorite", true).Error; err != nil {
				return err
			}
		}

		supplierIDs, err := favRepo.SupplierIDsWithFavorites()
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Supplier{}).
			Where("is_favourite = ?", true).
			Not(map[string]interface{}{"id": idsOrZero(supplierIDs)}).
			Update("is_favourite", false).Error; err != nil {
			return err
		}
		if len(supplierIDs) > 0 {
			if err := tx.Model(&models.Supplier{}).
				Where("id IN ? AND is_favourite = ?", supplierIDs, false).
				Update("is_favourite", true).Error; err != nil {
				return err
			}
		}

		logger.Debugw("favorite_flags_reconciled",
			"products_with_favorites", len(productIDs),
			"suppliers_with_favorites", len(supplierIDs),
		)
		return nil
	})
}

// idsOrZero keeps NOT IN well-formed when the id list is empty.
func idsOrZero(ids []uint) []uint {
	if len(ids) == 0 {
		return []uint{0}
	}
	return ids
}
