package models

// Account : Account Model
//
// One row per (identity, type). Identities are opaque strings resolved by the
// upstream gateway; the escrow custody account belongs to a system identity.
type Account struct {
	ID       int64  `bun:",pk,autoincrement"`
	Identity string `bun:",notnull"`
	Type     string `bun:",notnull"`
}
