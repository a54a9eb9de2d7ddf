// Package models defines the domain records shared by the ledger, the
// receipt workflow and the storage backends.
//
// # Money
//
// Every monetary field is a decimal.Decimal kept at two fractional digits.
// Floats never appear in this package; stores persist amounts as exact
// decimal text (SQLite) or DECIMAL(12,2) (MySQL).
//
// # Identity
//
// Ledger records reference members by Member.ID only. A Member is scoped to
// one group; the same user joining two groups gets two member ids.
//
// # Relationships
//
// Records use ID strings instead of pointers for relationships, so they can
// be loaded independently by the stores.
package models
