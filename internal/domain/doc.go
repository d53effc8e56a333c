// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (state/enums), sentinel errors and contracts only.
package domain
