package metrics

import "database/sql"

// Resolution outcomes for RecordRelatedResolved.
const (
	OutcomeLinked  = "linked"
	OutcomeCreated = "created"
)

// Write results for RecordArticleWrite.
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// RecordRelatedResolved counts one resolved descriptor.
// kind is "region" or "author"; outcome is OutcomeLinked or OutcomeCreated.
func RecordRelatedResolved(kind, outcome string) {
	RelatedEntitiesResolvedTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordArticleWrite counts one article create, update or delete.
func RecordArticleWrite(operation, result string) {
	ArticleWritesTotal.WithLabelValues(operation, result).Inc()
}

// Totals is a snapshot of table sizes.
type Totals struct {
	Articles int64
	Regions  int64
	Authors  int64
}

// UpdateTotals sets the entity gauges from a snapshot.
// It is called periodically by the stats job.
func UpdateTotals(t Totals) {
	ArticlesTotal.Set(float64(t.Articles))
	RegionsTotal.Set(float64(t.Regions))
	AuthorsTotal.Set(float64(t.Authors))
}

// UpdateDBPoolStats copies connection pool usage into the DB gauges.
func UpdateDBPoolStats(s sql.DBStats) {
	DBConnectionsInUse.Set(float64(s.InUse))
	DBConnectionsIdle.Set(float64(s.Idle))
}

// SetCircuitBreakerState publishes the state of a named circuit breaker.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}
