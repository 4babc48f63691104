package domain

import "time"

// AddressLookup is one logged balance lookup.
// Corresponds to the address_info table in PostgreSQL.
type AddressLookup struct {
	ID      int64     `json:"id"`      // BIGSERIAL primary key
	Date    time.Time `json:"date"`    // time the lookup was performed
	Address string    `json:"address"` // TRON account address, as submitted (trimmed)
	Balance float64   `json:"balance"` // TRX balance at lookup time
}

// Energy is the energy allowance of an account.
// Remaining is limit-used when a limit exists; it is not clamped, so an
// account whose usage exceeds its limit reports a negative value.
type Energy struct {
	Limit     int64 `json:"limit"`
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
}

// AccountInfo is the normalized summary returned for a single address lookup.
type AccountInfo struct {
	Address    string  `json:"address"`
	BalanceTRX float64 `json:"balance_trx"`
	Bandwidth  int64   `json:"bandwidth"`
	Energy     Energy  `json:"energy"`
}
