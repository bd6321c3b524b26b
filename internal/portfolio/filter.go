package portfolio

import (
	"strconv"
	"strings"
	"time"
)

// FilterExperience returns the experience entries visible on the given track.
// Entries tagged "both" appear on every track.
func (d *Data) FilterExperience(track Track) []Experience {
	if track == TrackBoth {
		return d.Experience
	}
	var out []Experience
	for _, exp := range d.Experience {
		if exp.Track == track || exp.Track == TrackBoth {
			out = append(out, exp)
		}
	}
	return out
}

// FilterProjects returns the projects visible on the given track.
func (d *Data) FilterProjects(track Track) []Project {
	if track == TrackBoth {
		return d.Projects
	}
	var out []Project
	for _, proj := range d.Projects {
		if proj.Track == track || proj.Track == TrackBoth {
			out = append(out, proj)
		}
	}
	return out
}

// ProfileVariant returns the role framing for the given track. The combined
// track uses the IT framing, which is the primary presentation.
func (d *Data) ProfileVariant(track Track) ProfileVariant {
	if track == TrackTranslation {
		return d.Profile.Variants[TrackTranslation]
	}
	return d.Profile.Variants[TrackIT]
}

// SkillsFor returns the skill categories for the given track. The combined
// track shows the IT categories plus the spoken-language category from the
// translation side.
func (d *Data) SkillsFor(track Track) []SkillCategory {
	switch track {
	case TrackIT:
		return d.SkillsIT
	case TrackTranslation:
		return d.SkillsTranslation
	}
	combined := make([]SkillCategory, 0, len(d.SkillsIT)+1)
	combined = append(combined, d.SkillsIT...)
	for _, cat := range d.SkillsTranslation {
		if cat.Label == "Languages" {
			combined = append(combined, cat)
			break
		}
	}
	return combined
}

var monthIndex = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// RecentExperience drops roles that started more than five years before now.
// Ongoing roles (period containing "Present") always stay, as do entries whose
// period cannot be parsed.
func RecentExperience(entries []Experience, now time.Time) []Experience {
	cutoff := now.AddDate(-5, 0, 0)
	var out []Experience
	for _, exp := range entries {
		if keepByRecency(exp.Period, cutoff) {
			out = append(out, exp)
		}
	}
	return out
}

func keepByRecency(period string, cutoff time.Time) bool {
	if strings.Contains(period, "Present") {
		return true
	}
	start, ok := parsePeriodStart(period)
	if !ok {
		return true
	}
	return !start.Before(cutoff)
}

// parsePeriodStart parses the start of a period like "Jan 2017 - Dec 2021".
func parsePeriodStart(period string) (time.Time, bool) {
	parts := strings.Split(period, " - ")
	if len(parts) != 2 {
		return time.Time{}, false
	}
	fields := strings.Fields(strings.TrimSpace(parts[0]))
	if len(fields) != 2 {
		return time.Time{}, false
	}
	month, ok := monthIndex[fields[0]]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}
