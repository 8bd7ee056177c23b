package records

import (
	"fmt"
	"log/slog"

	"github.com/fcosta/horas/internal/kvstore"
)

// legacyEnvelopeData is the oldest on-disk layout: both collections nested
// inside a persisted state envelope under a single unversioned key.
type legacyEnvelopeData struct {
	State struct {
		WorkLogs      []storedWorkSession `json:"workLogs"`
		Experimentals []storedTrialVisit  `json:"experimentals"`
	} `json:"state"`
	Version int `json:"version"`
}

// migrationStep upgrades one legacy storage layout to the next. Steps run
// in order during Load until none match, so a store several layouts behind
// walks the whole chain in one pass.
type migrationStep struct {
	name    string
	detect  func(kv *kvstore.Store) bool
	migrate func(kv *kvstore.Store, log *slog.Logger) error
}

var migrationSteps = []migrationStep{
	{
		name:    "unwrap state envelope",
		detect:  func(kv *kvstore.Store) bool { return kv.Has(legacyEnvelope) },
		migrate: migrateEnvelopeToSplitKeys,
	},
	{
		name:    "partition per account",
		detect:  func(kv *kvstore.Store) bool { return kv.Has(legacySessions) || kv.Has(legacyVisits) },
		migrate: migrateSplitKeysToVersioned,
	},
}

// runMigrations applies every matching step in order. Each step deletes
// the layout it consumed, so a second run finds nothing to do.
func runMigrations(kv *kvstore.Store, log *slog.Logger) error {
	for _, step := range migrationSteps {
		if !step.detect(kv) {
			continue
		}
		if err := step.migrate(kv, log); err != nil {
			return fmt.Errorf("migration %q: %w", step.name, err)
		}
		log.Info("storage migrated", "step", step.name)
	}
	return nil
}

// migrateEnvelopeToSplitKeys unwraps the nested {state, version} envelope
// into the unversioned split keys consumed by the next step.
func migrateEnvelopeToSplitKeys(kv *kvstore.Store, log *slog.Logger) error {
	var envelope legacyEnvelopeData
	if err := kv.Get(legacyEnvelope, &envelope); err != nil {
		// An unreadable envelope has nothing worth carrying forward.
		log.Warn("discarding unreadable legacy envelope", "error", err)
		return kv.Delete(legacyEnvelope)
	}
	if len(envelope.State.WorkLogs) > 0 && !kv.Has(legacySessions) {
		if err := kv.Set(legacySessions, envelope.State.WorkLogs); err != nil {
			return err
		}
	}
	if len(envelope.State.Experimentals) > 0 && !kv.Has(legacyVisits) {
		if err := kv.Set(legacyVisits, envelope.State.Experimentals); err != nil {
			return err
		}
	}
	return kv.Delete(legacyEnvelope)
}

// migrateSplitKeysToVersioned backfills missing owners, discards records
// that fail timestamp conversion, and rewrites both collections under the
// current per-account versioned keys.
func migrateSplitKeysToVersioned(kv *kvstore.Store, log *slog.Logger) error {
	var stored []storedWorkSession
	if kv.Has(legacySessions) {
		if err := kv.Get(legacySessions, &stored); err != nil {
			log.Warn("discarding unreadable legacy work sessions", "error", err)
			stored = nil
		}
	}
	byOwner := map[string][]storedWorkSession{}
	for _, s := range stored {
		decoded, err := decodeWorkSession(s)
		if err != nil {
			log.Warn("discarding work session during migration", "error", err)
			continue
		}
		byOwner[decoded.UserID] = append(byOwner[decoded.UserID], encodeWorkSession(decoded))
	}
	for owner, sessions := range byOwner {
		if err := kv.Set(sessionsKey(owner), sessions); err != nil {
			return err
		}
	}

	var visits []storedTrialVisit
	if kv.Has(legacyVisits) {
		if err := kv.Get(legacyVisits, &visits); err != nil {
			log.Warn("discarding unreadable legacy trial visits", "error", err)
			visits = nil
		}
	}
	visitsByOwner := map[string][]storedTrialVisit{}
	for _, v := range visits {
		decoded, err := decodeTrialVisit(v)
		if err != nil {
			log.Warn("discarding trial visit during migration", "error", err)
			continue
		}
		visitsByOwner[decoded.UserID] = append(visitsByOwner[decoded.UserID], encodeTrialVisit(decoded))
	}
	for owner, vs := range visitsByOwner {
		if err := kv.Set(visitsKey(owner), vs); err != nil {
			return err
		}
	}

	if err := kv.Delete(legacySessions); err != nil {
		return err
	}
	return kv.Delete(legacyVisits)
}
