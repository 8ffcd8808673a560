package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/mulbench/internal/config"
	"github.com/agbru/mulbench/internal/sysmon"
)

const (
	// CurrentProfileVersion changes whenever the profile format does.
	CurrentProfileVersion = 1

	DefaultProfileFileName = ".mulbench_calibration.json"

	// MaxProfileAge is how long a cached profile is trusted.
	MaxProfileAge = 30 * 24 * time.Hour
)

// CalibrationProfile records the fastest cutoff together with the
// hardware it was measured on, so that a profile copied to another
// machine is ignored.
type CalibrationProfile struct {
	CPUModel    string   `json:"cpu_model"`
	NumCPU      int      `json:"num_cpu"`
	GOARCH      string   `json:"goarch"`
	GOOS        string   `json:"goos"`
	GoVersion   string   `json:"go_version"`
	WordSize    int      `json:"word_size"`
	CPUFeatures []string `json:"cpu_features,omitempty"`

	OptimalCutoff    int   `json:"optimal_cutoff"`
	CalibrationSizes []int `json:"calibration_sizes,omitempty"`

	CalibratedAt    time.Time `json:"calibrated_at"`
	CalibrationTime string    `json:"calibration_time"`
	ProfileVersion  int       `json:"profile_version"`
}

// GetDefaultProfilePath returns ~/.mulbench_calibration.json, or the bare
// file name when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// NewProfile describes the current machine with no calibration result.
func NewProfile() *CalibrationProfile {
	model := sysmon.CPUModel()
	if model == "" {
		model = fmt.Sprintf("%s-%d-cores", runtime.GOARCH, runtime.NumCPU())
	}
	return &CalibrationProfile{
		CPUModel:       model,
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CPUFeatures:    sysmon.CPUFeatures(),
		CalibratedAt:   time.Now(),
		ProfileVersion: CurrentProfileVersion,
	}
}

// LoadProfile reads a profile; an empty path means the default location.
func LoadProfile(path string) (*CalibrationProfile, error) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}

// SaveProfile writes the profile; an empty path means the default location.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// IsValid reports whether p was produced by this profile format on
// hardware matching the current machine, with a usable cutoff.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil || p.ProfileVersion != CurrentProfileVersion || p.OptimalCutoff < 1 {
		return false
	}
	return p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63)
}

func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

func (p *CalibrationProfile) String() string {
	if p == nil {
		return "<nil profile>"
	}
	features := "none"
	if len(p.CPUFeatures) > 0 {
		features = strings.Join(p.CPUFeatures, ",")
	}
	return fmt.Sprintf("cutoff=%d cpu=%q cores=%d arch=%s/%s features=%s calibrated=%s (took %s)",
		p.OptimalCutoff, p.CPUModel, p.NumCPU, p.GOOS, p.GOARCH, features,
		p.CalibratedAt.Format(time.RFC3339), p.CalibrationTime)
}

// LoadOrCreateProfile returns the profile at path when it exists and
// parses, and a fresh profile otherwise. loaded tells which.
func LoadOrCreateProfile(path string) (profile *CalibrationProfile, loaded bool) {
	if p, err := LoadProfile(path); err == nil {
		return p, true
	}
	return NewProfile(), false
}

// LoadCachedCalibration fills cfg.Cutoff from a valid, fresh profile when
// the user left it at zero. It reports whether the profile was applied.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if cfg.Cutoff != 0 {
		return cfg, false
	}
	p, err := LoadProfile(path)
	if err != nil || !p.IsValid() || p.IsStale(MaxProfileAge) {
		return cfg, false
	}
	cfg.Cutoff = p.OptimalCutoff
	return cfg, true
}
