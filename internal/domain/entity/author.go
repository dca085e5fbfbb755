package entity

// Author is a person credited on one or more articles.
type Author struct {
	ID        int64
	FirstName string
	LastName  string
}

// Validate checks that both name parts are present and within length limits.
func (a *Author) Validate() error {
	if err := requireText("first_name", a.FirstName, maxNameLength); err != nil {
		return err
	}
	return requireText("last_name", a.LastName, maxNameLength)
}
