package types

import (
	"encoding/json"
	"time"
)

type ProductFlags struct {
	Modifiable    bool `json:"modifiable"` // only modifiable by admin
	NewProduct    bool `json:"new_product"`
	MarkedSoldOut bool `json:"marked_sold_out"`
}

// DefaultProductFlags is the flags blob attached to every generated product.
var DefaultProductFlags = ProductFlags{Modifiable: true}

func (f ProductFlags) String() string {
	data, _ := json.Marshal(f)
	return string(data)
}

type ProductRow struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	Stock       int
	Flags       string
}

type UserRow struct {
	ID                  int64
	Name                string
	Email               string
	GoogleID            string
	Role                string
	Balance             float64
	OnLeaderboard       bool
	PrivateTransactions bool
}

type TransactionRow struct {
	ID       int64
	User     int64
	Amount   float64
	Datetime time.Time
}

type TransactionItemRow struct {
	ID            int64
	TransactionID int64
	Product       int64
	Quantity      int
	Name          string
	Price         float64
}
