package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. These are returned by the model hooks before any
// state is written.
var (
	ErrAmountNotPositive      = errors.New("amounts must be larger than zero")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be income or expense")
	ErrShareOutOfRange        = errors.New("share percentages must be between 0 and 100")
	ErrPercentOutOfRange      = errors.New("percentages must be between 0 and 100")
	ErrWithdrawalLinkMissing  = errors.New("a fund withdrawal transaction must reference the withdrawal it was created for")
	ErrWithdrawalNotExpense   = errors.New("a fund withdrawal transaction must be an expense in the withdrawal category")
	ErrInvestorNotSet         = errors.New("the investor must be set")
	ErrCategoryNameNotSet     = errors.New("the category name must be set")
	ErrCategoryTypeInvalid    = errors.New("the category type must be income or expense")
)
