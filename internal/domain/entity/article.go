// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Region and Author, along with
// their validation rules and domain-specific errors.
package entity

// Article represents a published piece of content.
// Regions and Authors are many-to-many associations ordered by their primary key.
type Article struct {
	ID      int64
	Title   string
	Content string
	Regions []*Region
	Authors []*Author
}

// Validate checks the scalar fields of the article.
func (a *Article) Validate() error {
	if err := requireText("title", a.Title, maxTitleLength); err != nil {
		return err
	}
	return nil
}

// RegionIDs returns the ids of the linked regions in their current order.
func (a *Article) RegionIDs() []int64 {
	ids := make([]int64, 0, len(a.Regions))
	for _, r := range a.Regions {
		ids = append(ids, r.ID)
	}
	return ids
}

// AuthorIDs returns the ids of the linked authors in their current order.
func (a *Article) AuthorIDs() []int64 {
	ids := make([]int64, 0, len(a.Authors))
	for _, au := range a.Authors {
		ids = append(ids, au.ID)
	}
	return ids
}
