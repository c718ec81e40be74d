package metrics

// Lookup results for BoardDetailLookups
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// Cache results for CacheRequests
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// RecordBoardDetailLookup counts one detail lookup under result
func (m *Metrics) RecordBoardDetailLookup(result string) {
	m.safeExecute("RecordBoardDetailLookup", func() {
		m.BoardDetailLookups.WithLabelValues(result).Inc()
	})
}

// RecordValidationFailure counts one rejected payload per violated field
func (m *Metrics) RecordValidationFailure(fields []string) {
	m.safeExecute("RecordValidationFailure", func() {
		for _, f := range fields {
			m.ValidationFailures.WithLabelValues(f).Inc()
		}
	})
}

// RecordCacheRequest counts one board list cache lookup
func (m *Metrics) RecordCacheRequest(result string) {
	m.safeExecute("RecordCacheRequest", func() {
		m.CacheRequests.WithLabelValues(result).Inc()
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetColumnsTotal sets total columns gauge
func (m *Metrics) SetColumnsTotal(count int64) {
	m.safeExecute("SetColumnsTotal", func() {
		m.ColumnsTotal.Set(float64(count))
	})
}

// SetCardsTotal sets total cards gauge
func (m *Metrics) SetCardsTotal(count int64) {
	m.safeExecute("SetCardsTotal", func() {
		m.CardsTotal.Set(float64(count))
	})
}

// SetDanglingColumnRefs sets the number of unresolved column order entries
func (m *Metrics) SetDanglingColumnRefs(count int) {
	m.safeExecute("SetDanglingColumnRefs", func() {
		m.DanglingColumnRefs.Set(float64(count))
	})
}
