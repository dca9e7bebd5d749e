package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes the two category ledgers.
type Kind string

const (
	Debit  Kind = "debit"
	Credit Kind = "credit"
)

// Category is a user-defined spending or income bucket.
type Category struct {
	Id   int64
	Kind Kind
	Name string
}

// Account is a registered bank account.
type Account struct {
	Id   int64
	Name string
	Iban string
}

// Transaction is one imported bank-statement line.
// Hash fingerprints date, amount, and description for deduplication.
type Transaction struct {
	Id          int64
	AccountId   int64
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Hash        string
}
