package records

import "fmt"

// Storage keys are string-prefixed and version-suffixed. The current
// layout partitions collections per account; two older layouts are
// migrated once and then deleted (see migrate.go).
const (
	keyPrefix      = "horas"
	schemaVersion  = 2
	legacyEnvelope = keyPrefix + "-storage"
	legacySessions = keyPrefix + "-workSessions"
	legacyVisits   = keyPrefix + "-trialVisits"
)

// DefaultOwnerID is the account backfilled into records from layouts that
// predate per-account ownership.
const DefaultOwnerID = "1"

func sessionsKey(userID string) string {
	return fmt.Sprintf("%s-%s-workSessions-v%d", keyPrefix, userID, schemaVersion)
}

func visitsKey(userID string) string {
	return fmt.Sprintf("%s-%s-trialVisits-v%d", keyPrefix, userID, schemaVersion)
}
