package lines

import (
	"github.com/heartmarshall/poemfactory/internal/adapter/memory"
	"github.com/heartmarshall/poemfactory/internal/adapter/postgres"
	pgline "github.com/heartmarshall/poemfactory/internal/adapter/postgres/line"
	"github.com/heartmarshall/poemfactory/internal/adapter/sqlite"
	sqliteline "github.com/heartmarshall/poemfactory/internal/adapter/sqlite/line"
	"github.com/heartmarshall/poemfactory/internal/classifier"
)

var (
	_ lineRepo = (*pgline.Repo)(nil)
	_ lineRepo = (*sqliteline.Repo)(nil)
	_ lineRepo = (*memory.Store)(nil)

	_ txManager = (*postgres.TxManager)(nil)
	_ txManager = (*sqlite.TxManager)(nil)
	_ txManager = (*memory.Store)(nil)

	_ schemaManager = (*postgres.Migrator)(nil)
	_ schemaManager = (*sqlite.Migrator)(nil)
	_ schemaManager = (*memory.Store)(nil)

	_ lineClassifier = (*classifier.Classifier)(nil)
)
