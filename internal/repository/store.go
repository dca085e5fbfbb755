// Package repository declares the persistence contracts used by the use cases.
// Get methods return (nil, nil) when the row does not exist; Update and Delete
// wrap entity.ErrNotFound when no row was affected.
package repository

import "context"

// Store groups the repositories that share one connection or transaction.
type Store interface {
	Regions() RegionRepository
	Authors() AuthorRepository
	Articles() ArticleRepository
}

// Transactor runs fn against a Store bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

// TxStore is a Store that can also open transactions.
type TxStore interface {
	Store
	Transactor
}
