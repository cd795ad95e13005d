package donation

import (
	"context"
	"strings"

	"plate2share/domain"
	"plate2share/entities"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonations(ctx context.Context, query domain.DonationQuery) ([]*entities.Donation, int64, error)
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		SaveDonation(ctx context.Context, donation *entities.Donation) error
		DeleteDonation(ctx context.Context, id string) (bool, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

// sortableColumns guards ORDER BY construction against arbitrary input.
var sortableColumns = map[string]string{
	"created_at":  "created_at",
	"updated_at":  "updated_at",
	"expiry_date": "expiry_date",
	"food_name":   "food_name",
	"quantity":    "quantity",
	"status":      "status",
	"category":    "category",
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonations(ctx context.Context, query domain.DonationQuery) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64

	tx := r.db.WithContext(ctx).Model(&entities.Donation{})

	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Donor != "" {
		tx = tx.Where("donor_id = ?", query.Donor)
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if order := buildOrderClause(query.SortBy); order != "" {
		tx = tx.Order(order)
	}

	if err := tx.
		Preload("Donor").
		Preload("CollectedBy").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

// buildOrderClause translates "field:asc|desc" into an ORDER BY clause,
// ascending by default. Unknown fields yield natural order.
func buildOrderClause(sortBy string) string {
	if sortBy == "" {
		return ""
	}

	parts := strings.SplitN(sortBy, ":", 2)
	column, ok := sortableColumns[parts[0]]
	if !ok {
		return ""
	}

	direction := "ASC"
	if len(parts) == 2 && parts[1] == "desc" {
		direction = "DESC"
	}
	return column + " " + direction
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("CollectedBy").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) SaveDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Donation{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
