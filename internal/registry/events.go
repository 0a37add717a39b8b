// Event emission collaborator. The engine reports every mint, transfer, and
// burn through this interface; the engine itself never depends on what the
// emitter does with the notification.
package registry

import (
	"github.com/rs/zerolog"

	"github.com/offerhub/go-reputation-registry/internal/domain"
)

// Emitter receives notifications after each successful mutation.
type Emitter interface {
	Minted(to string, id domain.RecordID)
	AchievementMinted(to, typeTag string, id domain.RecordID)
	Transferred(from, to string, id domain.RecordID)
	Burned(owner string, id domain.RecordID)
}

// NopEmitter discards every event.
type NopEmitter struct{}

func (NopEmitter) Minted(string, domain.RecordID)                    {}
func (NopEmitter) AchievementMinted(string, string, domain.RecordID) {}
func (NopEmitter) Transferred(string, string, domain.RecordID)       {}
func (NopEmitter) Burned(string, domain.RecordID)                    {}

// LogEmitter writes each event as a structured log line.
type LogEmitter struct {
	Log zerolog.Logger
}

// Minted implements Emitter.
func (e LogEmitter) Minted(to string, id domain.RecordID) {
	e.Log.Info().Str("to", to).Uint64("record_id", uint64(id)).Msg("record minted")
}

// AchievementMinted implements Emitter.
func (e LogEmitter) AchievementMinted(to, typeTag string, id domain.RecordID) {
	e.Log.Info().
		Str("to", to).
		Str("type", typeTag).
		Uint64("record_id", uint64(id)).
		Msg("achievement minted")
}

// Transferred implements Emitter.
func (e LogEmitter) Transferred(from, to string, id domain.RecordID) {
	e.Log.Info().
		Str("from", from).
		Str("to", to).
		Uint64("record_id", uint64(id)).
		Msg("record transferred")
}

// Burned implements Emitter.
func (e LogEmitter) Burned(owner string, id domain.RecordID) {
	e.Log.Info().Str("owner", owner).Uint64("record_id", uint64(id)).Msg("record burned")
}
