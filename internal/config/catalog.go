package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/errors"
)

// DefaultProfile is the profile used when a request names none
const DefaultProfile = "default"

// Profile is a named pair of generation and calibration settings
type Profile struct {
	Name        string
	Generation  stats.GenerationConfig
	Calibration stats.CalibrationTable
}

// DefaultProfileValues returns the shipped settings under DefaultProfile
func DefaultProfileValues() Profile {
	return Profile{
		Name:        DefaultProfile,
		Generation:  stats.DefaultGenerationConfig(),
		Calibration: stats.DefaultCalibrationTable(),
	}
}

// Catalog is an immutable set of profiles. It always holds DefaultProfile.
type Catalog struct {
	profiles map[string]Profile
}

// NewCatalog builds a catalog, adding the built-in default profile when none
// of the given profiles is named DefaultProfile
func NewCatalog(profiles ...Profile) *Catalog {
	c := &Catalog{profiles: make(map[string]Profile, len(profiles)+1)}
	for _, p := range profiles {
		c.profiles[p.Name] = p
	}
	if _, ok := c.profiles[DefaultProfile]; !ok {
		c.profiles[DefaultProfile] = DefaultProfileValues()
	}
	return c
}

// Lookup returns a copy of the named profile. An empty name selects
// DefaultProfile; an unknown name is a missing configuration.
func (c *Catalog) Lookup(name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultProfile
	}

	p, ok := c.profiles[name]
	if !ok {
		return nil, errors.ConfigurationMissing("profile:" + name)
	}
	p.Generation.Stats.Types = append([]stats.StatType(nil), p.Generation.Stats.Types...)
	return &p, nil
}

// Names returns the profile names in order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// catalogFile is the on-disk layout. Unset fields inherit the defaults.
type catalogFile struct {
	StatsVersion *int                    `yaml:"stats_version" toml:"stats_version"`
	Stats        []string                `yaml:"stats" toml:"stats"`
	Profiles     map[string]profileEntry `yaml:"profiles" toml:"profiles"`
}

type profileEntry struct {
	Generation  generationEntry  `yaml:"generation" toml:"generation"`
	Calibration calibrationEntry `yaml:"calibration" toml:"calibration"`
}

type generationEntry struct {
	MinTotalPoints      *int     `yaml:"min_total_points" toml:"min_total_points"`
	MaxTotalPoints      *int     `yaml:"max_total_points" toml:"max_total_points"`
	TotalPointsSkew     *float64 `yaml:"total_points_skew" toml:"total_points_skew"`
	AntiDominanceAlpha  *float64 `yaml:"anti_dominance_alpha" toml:"anti_dominance_alpha"`
	CompareToCurrentMin *bool    `yaml:"compare_to_current_min" toml:"compare_to_current_min"`
	SpikeStartChance    *float64 `yaml:"spike_start_chance" toml:"spike_start_chance"`
	SpikeLengthMin      *int     `yaml:"spike_length_min" toml:"spike_length_min"`
	SpikeLengthMax      *int     `yaml:"spike_length_max" toml:"spike_length_max"`
	SpikeAlpha          *float64 `yaml:"spike_alpha" toml:"spike_alpha"`
	StartingLevel       *int     `yaml:"starting_level" toml:"starting_level"`
}

type calibrationEntry struct {
	MaxRank         *int     `yaml:"max_rank" toml:"max_rank"`
	MaxLevel        *int     `yaml:"max_level" toml:"max_level"`
	Rank1Level1     *float64 `yaml:"rank1_level1" toml:"rank1_level1"`
	Rank1MaxLevel   *float64 `yaml:"rank1_max_level" toml:"rank1_max_level"`
	MaxRankLevel1   *float64 `yaml:"max_rank_level1" toml:"max_rank_level1"`
	MaxRankMaxLevel *float64 `yaml:"max_rank_max_level" toml:"max_rank_max_level"`
}

// LoadCatalog reads a catalog file, choosing the decoder by extension
// (.yaml, .yml or .toml). An empty path returns the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("profile catalog %s does not exist", path)
		}
		return nil, errors.Wrapf(err, "failed to read profile catalog %s", path)
	}

	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, errors.InvalidArgumentf("unsupported profile catalog format %q", ext)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode profile catalog")
	}

	return file.build()
}

func (f *catalogFile) build() (*Catalog, error) {
	set := stats.DefaultSet()
	if len(f.Stats) > 0 {
		version := set.Version
		if f.StatsVersion != nil {
			version = *f.StatsVersion
		}
		custom, err := stats.NewSet(version, f.Stats...)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stat set in profile catalog")
		}
		set = custom
	}

	profiles := make([]Profile, 0, len(f.Profiles))
	for name, entry := range f.Profiles {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.InvalidArgument("profile name cannot be empty")
		}

		p := DefaultProfileValues()
		p.Name = name
		p.Generation.Stats = set
		entry.Generation.applyTo(&p.Generation)
		entry.Calibration.applyTo(&p.Calibration)
		profiles = append(profiles, p)
	}

	c := NewCatalog(profiles...)
	if _, ok := f.Profiles[DefaultProfile]; !ok {
		// the built-in default still has to use the file's stat set
		p := c.profiles[DefaultProfile]
		p.Generation.Stats = set
		c.profiles[DefaultProfile] = p
	}
	return c, nil
}

func (g generationEntry) applyTo(out *stats.GenerationConfig) {
	setIfPresent(&out.MinTotalPoints, g.MinTotalPoints)
	setIfPresent(&out.MaxTotalPoints, g.MaxTotalPoints)
	setIfPresent(&out.TotalPointsSkew, g.TotalPointsSkew)
	setIfPresent(&out.AntiDominanceAlpha, g.AntiDominanceAlpha)
	setIfPresent(&out.CompareToCurrentMin, g.CompareToCurrentMin)
	setIfPresent(&out.SpikeStartChance, g.SpikeStartChance)
	setIfPresent(&out.SpikeLengthMin, g.SpikeLengthMin)
	setIfPresent(&out.SpikeLengthMax, g.SpikeLengthMax)
	setIfPresent(&out.SpikeAlpha, g.SpikeAlpha)
	setIfPresent(&out.StartingLevel, g.StartingLevel)
}

func (c calibrationEntry) applyTo(out *stats.CalibrationTable) {
	setIfPresent(&out.MaxRank, c.MaxRank)
	setIfPresent(&out.MaxLevel, c.MaxLevel)
	setIfPresent(&out.Rank1Level1, c.Rank1Level1)
	setIfPresent(&out.Rank1MaxLevel, c.Rank1MaxLevel)
	setIfPresent(&out.MaxRankLevel1, c.MaxRankLevel1)
	setIfPresent(&out.MaxRankMaxLevel, c.MaxRankMaxLevel)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
