package lines

import "github.com/heartmarshall/poemfactory/internal/domain"

// InsertResult reports the outcome of InsertMany.
type InsertResult struct {
	Total      int
	Inserted   int
	Rejections []domain.Rejection
}

// Rejected returns the number of rejected inputs.
func (r InsertResult) Rejected() int {
	return len(r.Rejections)
}
