package entities

import (
	"strings"

	"github.com/dreamshade/recruit-api/internal/errors"
)

// JobClass is a set of classes; a recruit may hold several at once
type JobClass uint32

// Job classes
const (
	JobNone    JobClass = 0
	JobWarrior JobClass = 1 << (iota - 1)
	JobThief
	JobMage
	JobCleric
	JobRanger
	JobPaladin

	// JobAny matches every class
	JobAny JobClass = ^JobClass(0)
)

var jobNames = []struct {
	job  JobClass
	name string
}{
	{JobWarrior, "Warrior"},
	{JobThief, "Thief"},
	{JobMage, "Mage"},
	{JobCleric, "Cleric"},
	{JobRanger, "Ranger"},
	{JobPaladin, "Paladin"},
}

// Has reports whether every class in other is part of j
func (j JobClass) Has(other JobClass) bool {
	return j&other == other
}

// String joins the class names with "|"
func (j JobClass) String() string {
	switch j {
	case JobNone:
		return "None"
	case JobAny:
		return "Any"
	}

	var parts []string
	for _, jn := range jobNames {
		if j.Has(jn.job) {
			parts = append(parts, jn.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// ParseJobClass parses names joined by "|" or ",", ignoring case
func ParseJobClass(s string) (JobClass, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return JobNone, nil
	}

	var out JobClass
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name := strings.TrimSpace(part)
		switch {
		case strings.EqualFold(name, "None"):
			continue
		case strings.EqualFold(name, "Any"):
			return JobAny, nil
		}

		found := false
		for _, jn := range jobNames {
			if strings.EqualFold(name, jn.name) {
				out |= jn.job
				found = true
				break
			}
		}
		if !found {
			return JobNone, errors.InvalidArgumentf("unknown job class: %s", name)
		}
	}
	return out, nil
}

// MarshalText stores the class by name
func (j JobClass) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText reads a class name
func (j *JobClass) UnmarshalText(text []byte) error {
	parsed, err := ParseJobClass(string(text))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}
