package bridge

import (
	"bytes"
	"strings"
	"time"

	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
)

// The wire types decode the remote payload leniently. Sheet-backed
// stores lose type information: ids we sent as strings come back as
// numbers, booleans as "TRUE" strings, amounts as formatted strings.
// Everything is normalized to the local representation; numbers that
// cannot be parsed default to zero.

// ID is an identifier that may arrive as a JSON string or number and is
// normalized to a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" {
		value = ""
	}

	*id = ID(value)
	return nil
}

// Flag is a boolean that may arrive as a JSON bool, a number, or a
// string such as "TRUE" or "1".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	value := strings.ToLower(strings.Trim(string(data), `"`))
	*f = Flag(value == "true" || value == "1")
	return nil
}

// Number is a decimal that may arrive as a JSON number or string.
// Unparseable values default to zero.
type Number decimal.Decimal

func (n *Number) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*n = Number(decimal.Zero)
		return nil
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		*n = Number(decimal.Zero)
		return nil
	}

	*n = Number(parsed)
	return nil
}

func (n Number) decimal() decimal.Decimal {
	return decimal.Decimal(n)
}

func (n Number) intRef() *int {
	i := int(n.decimal().IntPart())
	return &i
}

// Timestamp is a creation instant that may be missing or malformed;
// those default to the zero time and gorm assigns a fresh one.
type Timestamp time.Time

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*t = Timestamp(time.Time{})
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		*t = Timestamp(time.Time{})
		return nil
	}

	*t = Timestamp(parsed)
	return nil
}

type wireTransaction struct {
	ID                 ID         `json:"id"`
	Type               string     `json:"type"`
	Amount             Number     `json:"amount"`
	Category           string     `json:"category"`
	Date               types.Date `json:"date"`
	Description        string     `json:"description"`
	DeductCost         Flag       `json:"deductCost"`
	HusbandShare       *Number    `json:"husbandShare"`
	WifeShare          *Number    `json:"wifeShare"`
	IsFundWithdrawal   Flag       `json:"isFundWithdrawal"`
	LinkedWithdrawalID *ID        `json:"linkedWithdrawalId"`
	Timestamp          Timestamp  `json:"timestamp"`
}

func (t wireTransaction) model() models.Transaction {
	transaction := models.Transaction{
		DefaultModel: models.DefaultModel{
			ID:         string(t.ID),
			Timestamps: models.Timestamps{CreatedAt: time.Time(t.Timestamp)},
		},
		Type:             models.TransactionType(t.Type),
		Amount:           t.Amount.decimal(),
		Category:         t.Category,
		Date:             t.Date,
		Description:      t.Description,
		DeductCost:       bool(t.DeductCost),
		IsFundWithdrawal: bool(t.IsFundWithdrawal),
	}

	if t.HusbandShare != nil {
		transaction.HusbandShare = t.HusbandShare.intRef()
	}

	if t.WifeShare != nil {
		transaction.WifeShare = t.WifeShare.intRef()
	}

	if t.LinkedWithdrawalID != nil && *t.LinkedWithdrawalID != "" {
		linked := string(*t.LinkedWithdrawalID)
		transaction.LinkedWithdrawalID = &linked
	}

	return transaction
}

type wireInvestment struct {
	ID        ID         `json:"id"`
	Amount    Number     `json:"amount"`
	Investor  string     `json:"investor"`
	Date      types.Date `json:"date"`
	Note      string     `json:"note"`
	Timestamp Timestamp  `json:"timestamp"`
}

func (i wireInvestment) model() models.Investment {
	return models.Investment{
		DefaultModel: models.DefaultModel{
			ID:         string(i.ID),
			Timestamps: models.Timestamps{CreatedAt: time.Time(i.Timestamp)},
		},
		Amount:   i.Amount.decimal(),
		Investor: i.Investor,
		Date:     i.Date,
		Note:     i.Note,
	}
}

type wireWithdrawal struct {
	ID        ID         `json:"id"`
	Amount    Number     `json:"amount"`
	Date      types.Date `json:"date"`
	Note      string     `json:"note"`
	Timestamp Timestamp  `json:"timestamp"`
}

func (w wireWithdrawal) model() models.Withdrawal {
	return models.Withdrawal{
		DefaultModel: models.DefaultModel{
			ID:         string(w.ID),
			Timestamps: models.Timestamps{CreatedAt: time.Time(w.Timestamp)},
		},
		Amount: w.Amount.decimal(),
		Date:   w.Date,
		Note:   w.Note,
	}
}

type wireCategory struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Type string `json:"type"`
}

func (c wireCategory) model() models.Category {
	return models.Category{
		DefaultModel: models.DefaultModel{ID: string(c.ID)},
		Name:         c.Name,
		Icon:         c.Icon,
		Type:         models.TransactionType(c.Type),
	}
}

type wireSettings struct {
	CostPercent  *Number `json:"costPercent"`
	HusbandShare *Number `json:"husbandShare"`
	WifeShare    *Number `json:"wifeShare"`
}

func (s wireSettings) model() models.Settings {
	settings := models.DefaultSettings()

	// A zero cost percent falls back to the default, matching the
	// behavior the sheet-backed store always had
	if s.CostPercent != nil && !s.CostPercent.decimal().IsZero() {
		settings.CostPercent = *s.CostPercent.intRef()
	}

	if s.HusbandShare != nil {
		settings.HusbandShare = *s.HusbandShare.intRef()
	}

	if s.WifeShare != nil {
		settings.WifeShare = *s.WifeShare.intRef()
	}

	return settings
}

// payload is the full remote state. Error responses share the same
// shape, with only status and message set.
type payload struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	Transactions     []wireTransaction `json:"transactions"`
	Investments      []wireInvestment  `json:"investments"`
	Withdrawals      []wireWithdrawal  `json:"withdrawals"`
	CustomCategories []wireCategory    `json:"customCategories"`
	Settings         *wireSettings     `json:"settings"`
}

func (p payload) ledger() models.Ledger {
	ledger := models.Ledger{
		Transactions:     make([]models.Transaction, 0, len(p.Transactions)),
		Investments:      make([]models.Investment, 0, len(p.Investments)),
		Withdrawals:      make([]models.Withdrawal, 0, len(p.Withdrawals)),
		CustomCategories: make([]models.Category, 0, len(p.CustomCategories)),
		Settings:         models.DefaultSettings(),
	}

	for _, transaction := range p.Transactions {
		ledger.Transactions = append(ledger.Transactions, transaction.model())
	}

	for _, investment := range p.Investments {
		ledger.Investments = append(ledger.Investments, investment.model())
	}

	for _, withdrawal := range p.Withdrawals {
		ledger.Withdrawals = append(ledger.Withdrawals, withdrawal.model())
	}

	for _, category := range p.CustomCategories {
		ledger.CustomCategories = append(ledger.CustomCategories, category.model())
	}

	if p.Settings != nil {
		ledger.Settings = p.Settings.model()
	}

	return ledger
}

// trimBOM removes a UTF-8 byte order mark. Some spreadsheet exports
// prefix their JSON with one.
func trimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
}
