package metrics

// RecordMutation counts an applied board mutation
func (m *Metrics) RecordMutation(operation string) {
	m.safeExecute("RecordMutation", func() {
		m.MutationsTotal.WithLabelValues(operation).Inc()
	})
}

// RecordNoOp counts a board operation that was absorbed without effect
func (m *Metrics) RecordNoOp(operation, reason string) {
	m.safeExecute("RecordNoOp", func() {
		m.NoOpsTotal.WithLabelValues(operation, reason).Inc()
	})
}

// RecordEventPublished counts an event handed to a notification sink
func (m *Metrics) RecordEventPublished(sink, eventType string) {
	m.safeExecute("RecordEventPublished", func() {
		m.EventsPublished.WithLabelValues(sink, eventType).Inc()
	})
}

// SetBoardTotals sets the board, column and card gauges
func (m *Metrics) SetBoardTotals(boards, columns, cards int) {
	m.safeExecute("SetBoardTotals", func() {
		m.BoardsTotal.Set(float64(boards))
		m.ColumnsTotal.Set(float64(columns))
		m.CardsTotal.Set(float64(cards))
	})
}

// SetWebSocketClients sets the connected event stream clients gauge
func (m *Metrics) SetWebSocketClients(count int) {
	m.safeExecute("SetWebSocketClients", func() {
		m.WebSocketClients.Set(float64(count))
	})
}

// RecordBackupRun counts a backup job run by result ("success", "failure", "skipped")
func (m *Metrics) RecordBackupRun(result string) {
	m.safeExecute("RecordBackupRun", func() {
		m.BackupRunsTotal.WithLabelValues(result).Inc()
	})
}
