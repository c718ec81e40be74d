package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrementBoardCreated(t *testing.T) {
	m := getTestMetrics()

	m.IncrementBoardCreated()
	m.IncrementBoardCreated()

	assert.Equal(t, 2.0, getCounterValue(t, m.BoardCreatedTotal))
}

func TestEntityGauges(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero", 0},
		{"one", 1},
		{"many", 42},
		{"large number", 5000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetBoardsTotal(tt.count)
			m.SetColumnsTotal(tt.count * 3)
			m.SetCardsTotal(tt.count * 7)

			assert.Equal(t, float64(tt.count), getGaugeValue(t, m.BoardsTotal))
			assert.Equal(t, float64(tt.count*3), getGaugeValue(t, m.ColumnsTotal))
			assert.Equal(t, float64(tt.count*7), getGaugeValue(t, m.CardsTotal))
		})
	}
}

func TestRecordBoardDetailLookup(t *testing.T) {
	m := getTestMetrics()

	m.RecordBoardDetailLookup(LookupFound)
	m.RecordBoardDetailLookup(LookupNotFound)
	m.RecordBoardDetailLookup(LookupNotFound)

	assert.Equal(t, 1.0, counterVecValue(t, m.BoardDetailLookups, LookupFound))
	assert.Equal(t, 2.0, counterVecValue(t, m.BoardDetailLookups, LookupNotFound))
	assert.Equal(t, 0.0, counterVecValue(t, m.BoardDetailLookups, LookupError))
}

func TestRecordValidationFailure_PerField(t *testing.T) {
	m := getTestMetrics()

	m.RecordValidationFailure([]string{"title", "type"})
	m.RecordValidationFailure([]string{"title"})
	m.RecordValidationFailure(nil)

	assert.Equal(t, 2.0, counterVecValue(t, m.ValidationFailures, "title"))
	assert.Equal(t, 1.0, counterVecValue(t, m.ValidationFailures, "type"))
	assert.Equal(t, 0.0, counterVecValue(t, m.ValidationFailures, "description"))
}

func TestRecordCacheRequest(t *testing.T) {
	m := getTestMetrics()

	m.RecordCacheRequest(CacheMiss)
	m.RecordCacheRequest(CacheHit)
	m.RecordCacheRequest(CacheHit)

	assert.Equal(t, 2.0, counterVecValue(t, m.CacheRequests, CacheHit))
	assert.Equal(t, 1.0, counterVecValue(t, m.CacheRequests, CacheMiss))
}

func TestSetDanglingColumnRefs(t *testing.T) {
	m := getTestMetrics()

	m.SetDanglingColumnRefs(3)
	assert.Equal(t, 3.0, getGaugeValue(t, m.DanglingColumnRefs))

	m.SetDanglingColumnRefs(0)
	assert.Equal(t, 0.0, getGaugeValue(t, m.DanglingColumnRefs))
}
