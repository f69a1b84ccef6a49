package metrics

import "time"

// RecordStorageOperation records a board repository load or save
func (m *Metrics) RecordStorageOperation(operation, backend string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		operation = normalizeOperation(operation)
		m.StorageOperationDuration.WithLabelValues(operation, backend).Observe(duration.Seconds())
		if err != nil {
			m.StorageErrors.WithLabelValues(operation, backend).Inc()
		}
	})
}

// RecordCorruptLoad counts a stored payload that could not be decoded or validated
func (m *Metrics) RecordCorruptLoad() {
	m.safeExecute("RecordCorruptLoad", func() {
		m.StorageCorruptLoads.Inc()
	})
}

// RecordPersistFailure counts a mutation kept in memory after its save failed ("timeout" or "error")
func (m *Metrics) RecordPersistFailure(operation, cause string) {
	m.safeExecute("RecordPersistFailure", func() {
		m.PersistFailures.WithLabelValues(operation, cause).Inc()
	})
}
