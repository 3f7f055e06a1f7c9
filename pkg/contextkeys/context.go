package contextkeys

// Custom type so our keys can never collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (connection pool or an outer transaction) is stored.
const DBContextKey = contextKey("db")
