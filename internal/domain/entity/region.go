package entity

// Region is a geographic area an article can be tagged with.
type Region struct {
	ID   int64
	Code string
	Name string
}

// Validate checks that code and name are present and within length limits.
func (r *Region) Validate() error {
	if err := requireText("code", r.Code, maxCodeLength); err != nil {
		return err
	}
	return requireText("name", r.Name, maxNameLength)
}
