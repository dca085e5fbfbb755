package repotest

import (
	"context"

	"articles-api/internal/domain/entity"
)

/* ───────────── regions ───────────── */

type regionRepo struct{ v *view }

func (r regionRepo) Get(_ context.Context, id int64) (*entity.Region, error) {
	defer r.v.lock()()
	if r.v.err != nil {
		return nil, r.v.err
	}
	reg, ok := r.v.d.regions[id]
	if !ok {
		return nil, nil
	}
	return &reg, nil
}

func (r regionRepo) List(_ context.Context) ([]*entity.Region, error) {
	defer r.v.lock()()
	if r.v.err != nil {
		return nil, r.v.err
	}
	out := make([]*entity.Region, 0, len(r.v.d.regions))
	for id := int64(1); id < r.v.d.nextRegion; id++ {
		if reg, ok := r.v.d.regions[id]; ok {
			out = append(out, &reg)
		}
	}
	return out, nil
}

func (r regionRepo) Create(_ context.Context, reg *entity.Region) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	reg.ID = r.v.d.nextRegion
	r.v.d.nextRegion++
	r.v.d.regions[reg.ID] = *reg
	return nil
}

func (r regionRepo) Update(_ context.Context, reg *entity.Region) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	if _, ok := r.v.d.regions[reg.ID]; !ok {
		return &entity.NotFoundError{Entity: "region", ID: reg.ID}
	}
	r.v.d.regions[reg.ID] = *reg
	return nil
}

func (r regionRepo) Delete(_ context.Context, id int64) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	if _, ok := r.v.d.regions[id]; !ok {
		return &entity.NotFoundError{Entity: "region", ID: id}
	}
	delete(r.v.d.regions, id)
	for _, set := range r.v.d.articleRegions {
		delete(set, id)
	}
	return nil
}

func (r regionRepo) Count(_ context.Context) (int64, error) {
	defer r.v.lock()()
	return int64(len(r.v.d.regions)), r.v.err
}

/* ───────────── authors ───────────── */

type authorRepo struct{ v *view }

func (r authorRepo) Get(_ context.Context, id int64) (*entity.Author, error) {
	defer r.v.lock()()
	if r.v.err != nil {
		return nil, r.v.err
	}
	a, ok := r.v.d.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r authorRepo) List(_ context.Context) ([]*entity.Author, error) {
	defer r.v.lock()()
	if r.v.err != nil {
		return nil, r.v.err
	}
	out := make([]*entity.Author, 0, len(r.v.d.authors))
	for id := int64(1); id < r.v.d.nextAuthor; id++ {
		if a, ok := r.v.d.authors[id]; ok {
			out = append(out, &a)
		}
	}
	return out, nil
}

func (r authorRepo) Create(_ context.Context, a *entity.Author) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	a.ID = r.v.d.nextAuthor
	r.v.d.nextAuthor++
	r.v.d.authors[a.ID] = *a
	return nil
}

func (r authorRepo) Update(_ context.Context, a *entity.Author) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	if _, ok := r.v.d.authors[a.ID]; !ok {
		return &entity.NotFoundError{Entity: "author", ID: a.ID}
	}
	r.v.d.authors[a.ID] = *a
	return nil
}

func (r authorRepo) Delete(_ context.Context, id int64) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	if _, ok := r.v.d.authors[id]; !ok {
		return &entity.NotFoundError{Entity: "author", ID: id}
	}
	delete(r.v.d.authors, id)
	for _, set := range r.v.d.articleAuthors {
		delete(set, id)
	}
	return nil
}

func (r authorRepo) Count(_ context.Context) (int64, error) {
	defer r.v.lock()()
	return int64(len(r.v.d.authors)), r.v.err
}

/* ───────────── articles ───────────── */

type articleRepo struct{ v *view }

func (r articleRepo) hydrate(a entity.Article) *entity.Article {
	a.Regions = []*entity.Region{}
	for _, id := range sortedIDs(r.v.d.articleRegions[a.ID]) {
		reg := r.v.d.regions[id]
		a.Regions = append(a.Regions, &reg)
	}
	a.Authors = []*entity.Author{}
	for _, id := range sortedIDs(r.v.d.articleAuthors[a.ID]) {
		au := r.v.d.authors[id]
		a.Authors = append(a.Authors, &au)
	}
	return &a
}

func (r articleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	defer r.v.lock()()
	if r.v.err != nil {
		return nil, r.v.err
	}
	a, ok := r.v.d.articles[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(a), nil
}

func (r articleRepo) List(_ context.Context) ([]*entity.Article, error) {
	defer r.v.lock()()
	if r.v.err != nil {
		return nil, r.v.err
	}
	out := make([]*entity.Article, 0, len(r.v.d.articles))
	for id := int64(1); id < r.v.d.nextArticle; id++ {
		if a, ok := r.v.d.articles[id]; ok {
			out = append(out, r.hydrate(a))
		}
	}
	return out, nil
}

func (r articleRepo) Create(_ context.Context, a *entity.Article) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	a.ID = r.v.d.nextArticle
	r.v.d.nextArticle++
	r.v.d.articles[a.ID] = entity.Article{ID: a.ID, Title: a.Title, Content: a.Content}
	return nil
}

func (r articleRepo) Update(_ context.Context, a *entity.Article) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	if _, ok := r.v.d.articles[a.ID]; !ok {
		return &entity.NotFoundError{Entity: "article", ID: a.ID}
	}
	r.v.d.articles[a.ID] = entity.Article{ID: a.ID, Title: a.Title, Content: a.Content}
	return nil
}

func (r articleRepo) Delete(_ context.Context, id int64) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	if _, ok := r.v.d.articles[id]; !ok {
		return &entity.NotFoundError{Entity: "article", ID: id}
	}
	delete(r.v.d.articles, id)
	delete(r.v.d.articleRegions, id)
	delete(r.v.d.articleAuthors, id)
	return nil
}

func (r articleRepo) Count(_ context.Context) (int64, error) {
	defer r.v.lock()()
	return int64(len(r.v.d.articles)), r.v.err
}

func (r articleRepo) ReplaceRegions(_ context.Context, articleID int64, ids []int64) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := r.v.d.regions[id]; !ok {
			return &entity.NotFoundError{Entity: "region", ID: id}
		}
		set[id] = struct{}{}
	}
	r.v.d.articleRegions[articleID] = set
	return nil
}

func (r articleRepo) ReplaceAuthors(_ context.Context, articleID int64, ids []int64) error {
	defer r.v.lock()()
	if r.v.err != nil {
		return r.v.err
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := r.v.d.authors[id]; !ok {
			return &entity.NotFoundError{Entity: "author", ID: id}
		}
		set[id] = struct{}{}
	}
	r.v.d.articleAuthors[articleID] = set
	return nil
}
