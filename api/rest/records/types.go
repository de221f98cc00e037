package records

import "codeberg.org/leveltrack/server/leveltrack/records"

// RecordsListResponse wraps a user's records
type RecordsListResponse struct {
	Records []records.Record `json:"records"`
}
