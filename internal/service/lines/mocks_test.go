package lines

import (
	"context"
	"sync"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

var (
	_ lineRepo      = &lineRepoMock{}
	_ txManager     = &txManagerMock{}
	_ schemaManager = &schemaManagerMock{}
)

type lineRepoMock struct {
	BulkInsertFunc              func(ctx context.Context, lines []domain.ClassifiedLine) (int, error)
	RhymeGroupsWithMinCountFunc func(ctx context.Context, syllables []int, minCount int) ([]string, error)
	SampleLinesFunc             func(ctx context.Context, syllables []int, rhymeKey string, limit int) ([]string, error)
	CountFunc                   func(ctx context.Context) (int, error)

	calls struct {
		BulkInsert []struct {
			Lines []domain.ClassifiedLine
		}
		RhymeGroupsWithMinCount []struct {
			Syllables []int
			MinCount  int
		}
		SampleLines []struct {
			Syllables []int
			RhymeKey  string
			Limit     int
		}
		Count []struct{}
	}
	lockBulkInsert              sync.RWMutex
	lockRhymeGroupsWithMinCount sync.RWMutex
	lockSampleLines             sync.RWMutex
	lockCount                   sync.RWMutex
}

func (mock *lineRepoMock) BulkInsert(ctx context.Context, lines []domain.ClassifiedLine) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("lineRepoMock.BulkInsertFunc: method is nil but lineRepo.BulkInsert was just called")
	}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, struct {
		Lines []domain.ClassifiedLine
	}{Lines: lines})
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, lines)
}

func (mock *lineRepoMock) BulkInsertCalls() []struct {
	Lines []domain.ClassifiedLine
} {
	mock.lockBulkInsert.RLock()
	defer mock.lockBulkInsert.RUnlock()
	return mock.calls.BulkInsert
}

func (mock *lineRepoMock) RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error) {
	if mock.RhymeGroupsWithMinCountFunc == nil {
		panic("lineRepoMock.RhymeGroupsWithMinCountFunc: method is nil but lineRepo.RhymeGroupsWithMinCount was just called")
	}
	mock.lockRhymeGroupsWithMinCount.Lock()
	mock.calls.RhymeGroupsWithMinCount = append(mock.calls.RhymeGroupsWithMinCount, struct {
		Syllables []int
		MinCount  int
	}{Syllables: syllables, MinCount: minCount})
	mock.lockRhymeGroupsWithMinCount.Unlock()
	return mock.RhymeGroupsWithMinCountFunc(ctx, syllables, minCount)
}

func (mock *lineRepoMock) RhymeGroupsWithMinCountCalls() []struct {
	Syllables []int
	MinCount  int
} {
	mock.lockRhymeGroupsWithMinCount.RLock()
	defer mock.lockRhymeGroupsWithMinCount.RUnlock()
	return mock.calls.RhymeGroupsWithMinCount
}

func (mock *lineRepoMock) SampleLines(ctx context.Context, syllables []int, rhymeKey string, limit int) ([]string, error) {
	if mock.SampleLinesFunc == nil {
		panic("lineRepoMock.SampleLinesFunc: method is nil but lineRepo.SampleLines was just called")
	}
	mock.lockSampleLines.Lock()
	mock.calls.SampleLines = append(mock.calls.SampleLines, struct {
		Syllables []int
		RhymeKey  string
		Limit     int
	}{Syllables: syllables, RhymeKey: rhymeKey, Limit: limit})
	mock.lockSampleLines.Unlock()
	return mock.SampleLinesFunc(ctx, syllables, rhymeKey, limit)
}

func (mock *lineRepoMock) SampleLinesCalls() []struct {
	Syllables []int
	RhymeKey  string
	Limit     int
} {
	mock.lockSampleLines.RLock()
	defer mock.lockSampleLines.RUnlock()
	return mock.calls.SampleLines
}

func (mock *lineRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("lineRepoMock.CountFunc: method is nil but lineRepo.Count was just called")
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{}{})
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *lineRepoMock) CountCalls() []struct{} {
	mock.lockCount.RLock()
	defer mock.lockCount.RUnlock()
	return mock.calls.Count
}

// txManagerMock runs fn directly and records how often a transaction was opened.
type txManagerMock struct {
	mu    sync.Mutex
	runs  int
	Error error // returned instead of running fn when set
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.mu.Lock()
	mock.runs++
	mock.mu.Unlock()
	if mock.Error != nil {
		return mock.Error
	}
	return fn(ctx)
}

func (mock *txManagerMock) Runs() int {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.runs
}

type schemaManagerMock struct {
	ResetFunc func(ctx context.Context) error
	resets    int
}

func (mock *schemaManagerMock) Reset(ctx context.Context) error {
	mock.resets++
	if mock.ResetFunc == nil {
		return nil
	}
	return mock.ResetFunc(ctx)
}
