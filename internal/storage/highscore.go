package storage

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorswitch/internal/match"
)

// AppName is the game data directory name used with gdata.
const AppName = "colorswitch"

const highScoreObject = "highscore"

// bestRecord is the YAML payload stored per mode.
type bestRecord struct {
	Score int `yaml:"score"`
}

// HighScoreManager keeps the best score per mode across sessions.
// A nil gdata manager means degraded mode: bests live in memory only.
type HighScoreManager struct {
	mu    sync.Mutex
	data  *gdata.Manager
	cache map[string]int
}

// OpenGameData opens the per-user game data store for colorswitch.
func OpenGameData() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open game data: %w", err)
	}
	return m, nil
}

// NewHighScoreManager creates a manager backed by data, which may be nil.
func NewHighScoreManager(data *gdata.Manager) *HighScoreManager {
	return &HighScoreManager{
		data:  data,
		cache: make(map[string]int),
	}
}

// Persistent reports whether bests survive the process.
func (h *HighScoreManager) Persistent() bool {
	return h.data != nil
}

// HighScore returns the best score for a mode, 0 if none was recorded.
func (h *HighScoreManager) HighScore(mode string) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load(mode)
}

func (h *HighScoreManager) load(mode string) (int, error) {
	if best, ok := h.cache[mode]; ok {
		return best, nil
	}
	if h.data == nil || !h.data.ObjectPropExists(highScoreObject, mode) {
		return 0, nil
	}

	raw, err := h.data.LoadObjectProp(highScoreObject, mode)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	var rec bestRecord
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return 0, fmt.Errorf("storage: cannot decode best score: %w", err)
	}
	h.cache[mode] = rec.Score
	return rec.Score, nil
}

func (h *HighScoreManager) store(mode string, score int) error {
	h.cache[mode] = score
	if h.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(bestRecord{Score: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode best score: %w", err)
	}
	if err := h.data.SaveObjectProp(highScoreObject, mode, raw); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Update records score if it beats the current best. It returns true when
// a new best was set.
func (h *HighScoreManager) Update(mode string, score int) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	best, err := h.load(mode)
	if err != nil {
		// A corrupt record is replaced rather than blocking new bests.
		best = 0
	}
	if score <= best {
		return false, nil
	}
	if err := h.store(mode, score); err != nil {
		return true, err
	}
	return true, nil
}

// Reset sets the best score for a mode back to 0.
func (h *HighScoreManager) Reset(mode string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store(mode, 0)
}

// SaveResult implements match.ResultSaver using the best score of the match.
func (h *HighScoreManager) SaveResult(result match.MatchResult) error {
	_, err := h.Update(result.Mode.String(), result.Best())
	return err
}

var _ match.ResultSaver = (*HighScoreManager)(nil)
