package v1

import (
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type         models.TransactionType `json:"type" example:"income"`
	Amount       decimal.Decimal        `json:"amount" example:"1000" minimum:"0.00000001" multipleOf:"0.00000001"` // The amount of the money movement
	Category     string                 `json:"category" example:"sales"`                                           // ID of the category
	Date         types.Date             `json:"date" example:"2024-01-15"`                                          // Civil date of the movement
	Description  string                 `json:"description" example:"Market day" default:""`                        // Optional description
	DeductCost   bool                   `json:"deductCost" default:"false"`                                         // Income only: does this income feed the cost reserve?
	HusbandShare *int                   `json:"husbandShare" minimum:"0" maximum:"100"`                             // Income only: override of the default profit split
	WifeShare    *int                   `json:"wifeShare" minimum:"0" maximum:"100"`                                // Income only: override of the default profit split
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:         editable.Type,
		Amount:       editable.Amount,
		Category:     editable.Category,
		Date:         editable.Date,
		Description:  editable.Description,
		DeductCost:   editable.DeductCost,
		HusbandShare: editable.HusbandShare,
		WifeShare:    editable.WifeShare,
	}
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // The resource
	Error *string             `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`  // List of resources
	Error *string              `json:"error"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type        string `form:"type" filterField:"false"`        // By type, "income" or "expense"
	Category    string `form:"category"`                        // By category id
	Month       string `form:"month" filterField:"false"`       // By calendar month, YYYY-MM
	Description string `form:"description" filterField:"false"` // By description, glob patterns supported
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Category: f.Category,
	}
}
