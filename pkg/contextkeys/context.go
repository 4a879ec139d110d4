package contextkeys

// ContextKey is the type used for values stored in request contexts.
type ContextKey string

const (
	// DBContextKey holds the *gorm.DB (pool or transaction) bound to the
	// current request by middleware.DBMiddleware.
	DBContextKey ContextKey = "db"
)
