package playbook

import (
	"strings"

	"leadadapter/lead"
)

// matchThreshold is the minimum weighted score for a profile to count as a
// match. The boundary is inclusive: exactly 0.3 is accepted.
const matchThreshold = 0.3

// Weighted contribution of each matching dimension.
const (
	titleWeight   = 0.5
	keywordWeight = 0.3
	skillsWeight  = 0.2
)

// Matcher scores a lead against the playbook's ICP profiles and picks the
// best one above the threshold.
type Matcher struct{}

// NewMatcher returns a Matcher.
func NewMatcher() Matcher {
	return Matcher{}
}

// Match returns the highest-scoring profile, or nil when the playbook has
// no profiles or no profile reaches the threshold. Ties keep the earliest
// profile in playbook order since the comparison is strictly greater-than.
func (Matcher) Match(ld lead.Lead, pb Playbook) *ICPProfile {
	if len(pb.ICPProfiles) == 0 {
		return nil
	}

	var best *ICPProfile
	bestScore := 0.0
	for i := range pb.ICPProfiles {
		score := matchScore(ld, pb.ICPProfiles[i])
		if score > bestScore {
			bestScore = score
			best = &pb.ICPProfiles[i]
		}
	}

	if bestScore < matchThreshold {
		return nil
	}
	return best
}

// matchScore computes the weighted compatibility score in [0, 1]:
// 0.5 * title hits + 0.3 * sector keywords in title + 0.2 * skill hits.
// A dimension contributes only when its denominator is non-zero.
func matchScore(ld lead.Lead, icp ICPProfile) float64 {
	score := 0.0
	titleLower := strings.ToLower(ld.JobTitle)

	if len(icp.TargetTitles) > 0 {
		hits := 0
		for _, target := range icp.TargetTitles {
			if strings.Contains(titleLower, strings.ToLower(target)) {
				hits++
			}
		}
		score += titleWeight * float64(hits) / float64(len(icp.TargetTitles))
	}

	if len(icp.KeywordsSector) > 0 {
		hits := 0
		for _, kw := range icp.KeywordsSector {
			if strings.Contains(titleLower, strings.ToLower(kw)) {
				hits++
			}
		}
		score += keywordWeight * float64(hits) / float64(len(icp.KeywordsSector))
	}

	if len(ld.Skills) > 0 && len(icp.KeywordsSector) > 0 {
		hits := 0
		for _, skill := range ld.Skills {
			skillLower := strings.ToLower(skill)
			for _, kw := range icp.KeywordsSector {
				if strings.Contains(skillLower, strings.ToLower(kw)) {
					hits++
					break
				}
			}
		}
		score += skillsWeight * float64(hits) / float64(len(ld.Skills))
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}
