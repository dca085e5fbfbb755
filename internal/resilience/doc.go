// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes a circuit breaker around the database connection and retry logic used
// while establishing that connection at startup.
//
// Usage Example:
//
//	conn := circuitbreaker.NewDBCircuitBreaker(db)
//	store := postgres.NewStore(conn)
//
//	err := retry.WithBackoff(ctx, retry.DBConnectConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
