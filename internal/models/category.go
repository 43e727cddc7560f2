package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is a user-defined transaction category. The built-in
// categories live in the categories package and are not stored.
type Category struct {
	DefaultModel
	Name string          `json:"name"`
	Icon string          `json:"icon"`
	Type TransactionType `json:"type"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrCategoryNameNotSet
	}

	if c.Type != TransactionIncome && c.Type != TransactionExpense {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// Categories returns all user-defined categories in creation order.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Order("datetime(categories.created_at) ASC").Find(&categories).Error
	return categories, err
}
