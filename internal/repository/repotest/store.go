// Package repotest provides an in-memory repository.TxStore for use case and handler tests.
// Transactions work on a copy of the data that replaces the original only on commit.
package repotest

import (
	"context"
	"sort"
	"sync"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type data struct {
	regions  map[int64]entity.Region
	authors  map[int64]entity.Author
	articles map[int64]entity.Article // scalar fields only
	// article id -> set of linked ids
	articleRegions map[int64]map[int64]struct{}
	articleAuthors map[int64]map[int64]struct{}

	nextRegion, nextAuthor, nextArticle int64
}

func newData() *data {
	return &data{
		regions:        map[int64]entity.Region{},
		authors:        map[int64]entity.Author{},
		articles:       map[int64]entity.Article{},
		articleRegions: map[int64]map[int64]struct{}{},
		articleAuthors: map[int64]map[int64]struct{}{},
		nextRegion:     1, nextAuthor: 1, nextArticle: 1,
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.regions {
		c.regions[k] = v
	}
	for k, v := range d.authors {
		c.authors[k] = v
	}
	for k, v := range d.articles {
		c.articles[k] = v
	}
	for k, set := range d.articleRegions {
		c.articleRegions[k] = cloneSet(set)
	}
	for k, set := range d.articleAuthors {
		c.articleAuthors[k] = cloneSet(set)
	}
	c.nextRegion, c.nextAuthor, c.nextArticle = d.nextRegion, d.nextAuthor, d.nextArticle
	return c
}

func cloneSet(set map[int64]struct{}) map[int64]struct{} {
	c := make(map[int64]struct{}, len(set))
	for k := range set {
		c[k] = struct{}{}
	}
	return c
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Store is an in-memory repository.TxStore.
type Store struct {
	mu   sync.Mutex
	data *data

	// Err, when set, is returned by every repository call.
	Err error
	// Commits and Rollbacks count finished transactions.
	Commits, Rollbacks int
}

var _ repository.TxStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: newData()}
}

func (s *Store) Regions() repository.RegionRepository   { return regionRepo{&view{store: s}} }
func (s *Store) Authors() repository.AuthorRepository   { return authorRepo{&view{store: s}} }
func (s *Store) Articles() repository.ArticleRepository { return articleRepo{&view{store: s}} }

// WithinTx serialises transactions and applies fn's changes only when it returns nil.
func (s *Store) WithinTx(_ context.Context, fn func(tx repository.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &view{d: s.data.clone(), err: s.Err}
	if err := fn(txStore{tx}); err != nil {
		s.Rollbacks++
		return err
	}
	s.data = tx.d
	s.Commits++
	return nil
}

type txStore struct{ v *view }

func (t txStore) Regions() repository.RegionRepository   { return regionRepo{t.v} }
func (t txStore) Authors() repository.AuthorRepository   { return authorRepo{t.v} }
func (t txStore) Articles() repository.ArticleRepository { return articleRepo{t.v} }

// view is the data a repository call works on.
// Outside a transaction it follows the store, so repositories obtained before a
// commit or before Err is set see the current state.
type view struct {
	store *Store // nil inside a transaction
	d     *data
	err   error
}

func (v *view) lock() func() {
	if v.store == nil {
		return func() {}
	}
	v.store.mu.Lock()
	v.d, v.err = v.store.data, v.store.Err
	return v.store.mu.Unlock
}
