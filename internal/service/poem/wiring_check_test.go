package poem

import (
	"github.com/heartmarshall/poemfactory/internal/classifier"
	"github.com/heartmarshall/poemfactory/internal/service/lines"
)

var (
	_ lineStore      = (*lines.Service)(nil)
	_ lineClassifier = (*classifier.Classifier)(nil)
)
