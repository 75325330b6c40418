package poem

import (
	"context"
	"sync"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

var (
	_ lineStore      = &lineStoreMock{}
	_ lineClassifier = &lineClassifierMock{}
)

type lineStoreMock struct {
	RhymeGroupsWithMinCountFunc func(ctx context.Context, syllables []int, minCount int) ([]string, error)
	SampleLinesFunc             func(ctx context.Context, syllables []int, rhymeKey string, count int) ([]string, error)

	calls struct {
		RhymeGroupsWithMinCount []struct {
			Syllables []int
			MinCount  int
		}
		SampleLines []struct {
			Syllables []int
			RhymeKey  string
			Count     int
		}
	}
	lockRhymeGroupsWithMinCount sync.RWMutex
	lockSampleLines             sync.RWMutex
}

func (mock *lineStoreMock) RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error) {
	if mock.RhymeGroupsWithMinCountFunc == nil {
		panic("lineStoreMock.RhymeGroupsWithMinCountFunc: method is nil but lineStore.RhymeGroupsWithMinCount was just called")
	}
	mock.lockRhymeGroupsWithMinCount.Lock()
	mock.calls.RhymeGroupsWithMinCount = append(mock.calls.RhymeGroupsWithMinCount, struct {
		Syllables []int
		MinCount  int
	}{Syllables: syllables, MinCount: minCount})
	mock.lockRhymeGroupsWithMinCount.Unlock()
	return mock.RhymeGroupsWithMinCountFunc(ctx, syllables, minCount)
}

func (mock *lineStoreMock) RhymeGroupsWithMinCountCalls() []struct {
	Syllables []int
	MinCount  int
} {
	mock.lockRhymeGroupsWithMinCount.RLock()
	defer mock.lockRhymeGroupsWithMinCount.RUnlock()
	return mock.calls.RhymeGroupsWithMinCount
}

func (mock *lineStoreMock) SampleLines(ctx context.Context, syllables []int, rhymeKey string, count int) ([]string, error) {
	if mock.SampleLinesFunc == nil {
		panic("lineStoreMock.SampleLinesFunc: method is nil but lineStore.SampleLines was just called")
	}
	mock.lockSampleLines.Lock()
	mock.calls.SampleLines = append(mock.calls.SampleLines, struct {
		Syllables []int
		RhymeKey  string
		Count     int
	}{Syllables: syllables, RhymeKey: rhymeKey, Count: count})
	mock.lockSampleLines.Unlock()
	return mock.SampleLinesFunc(ctx, syllables, rhymeKey, count)
}

func (mock *lineStoreMock) SampleLinesCalls() []struct {
	Syllables []int
	RhymeKey  string
	Count     int
} {
	mock.lockSampleLines.RLock()
	defer mock.lockSampleLines.RUnlock()
	return mock.calls.SampleLines
}

type lineClassifierMock struct {
	ClassifyFunc func(raw string) (domain.ClassifiedLine, error)
}

func (mock *lineClassifierMock) Classify(raw string) (domain.ClassifiedLine, error) {
	if mock.ClassifyFunc == nil {
		panic("lineClassifierMock.ClassifyFunc: method is nil but lineClassifier.Classify was just called")
	}
	return mock.ClassifyFunc(raw)
}

// fixedRand always returns the same index, clamped to n.
type fixedRand struct{ i int }

func (r fixedRand) IntN(n int) int { return min(r.i, n-1) }
