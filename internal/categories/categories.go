// Package categories resolves category ids to display categories,
// merging the built-in sets with user-defined ones.
package categories

import (
	"github.com/familybiz/backend/internal/models"
)

// Category is the display representation of a category.
type Category struct {
	ID   string                 `json:"id"`
	Name string                 `json:"name"`
	Icon string                 `json:"icon"`
	Type models.TransactionType `json:"type"`
}

// The built-in category sets. Their ids are reserved; the resolver
// searches them before the user-defined ones, so a colliding custom
// category is never returned by Lookup (it is still listed).
var builtinIncome = []Category{
	{ID: "sales", Name: "Product sales", Icon: "🛒", Type: models.TransactionIncome},
	{ID: "service", Name: "Services", Icon: "🔧", Type: models.TransactionIncome},
	{ID: "invest", Name: "Additional capital", Icon: "💰", Type: models.TransactionIncome},
	{ID: "other", Name: "Other income", Icon: "📥", Type: models.TransactionIncome},
}

var builtinExpense = []Category{
	{ID: "cost", Name: "Cost of goods", Icon: "📦", Type: models.TransactionExpense},
	{ID: "shipping", Name: "Shipping", Icon: "🚚", Type: models.TransactionExpense},
	{ID: "ads", Name: "Advertising", Icon: "📢", Type: models.TransactionExpense},
	{ID: "rent", Name: "Rent", Icon: "🏪", Type: models.TransactionExpense},
	{ID: "utility", Name: "Utilities", Icon: "💡", Type: models.TransactionExpense},
	{ID: models.CategoryWithdrawal, Name: "Reserve withdrawal", Icon: "📤", Type: models.TransactionExpense},
	{ID: "other_out", Name: "Other expenses", Icon: "💸", Type: models.TransactionExpense},
}

func builtin(transactionType models.TransactionType) []Category {
	if transactionType == models.TransactionIncome {
		return builtinIncome
	}

	return builtinExpense
}

func fromModel(category models.Category) Category {
	return Category{
		ID:   category.ID,
		Name: category.Name,
		Icon: category.Icon,
		Type: category.Type,
	}
}

// List returns the built-in categories for the type followed by the
// user-defined categories of that type.
func List(transactionType models.TransactionType, custom []models.Category) []Category {
	list := make([]Category, 0, len(builtin(transactionType))+len(custom))
	list = append(list, builtin(transactionType)...)

	for _, category := range custom {
		if category.Type == transactionType {
			list = append(list, fromModel(category))
		}
	}

	return list
}

// Lookup returns the first category with the given id, or false when no
// category matches. Callers fall back to displaying the raw id.
func Lookup(transactionType models.TransactionType, id string, custom []models.Category) (Category, bool) {
	for _, category := range List(transactionType, custom) {
		if category.ID == id {
			return category, true
		}
	}

	return Category{}, false
}
