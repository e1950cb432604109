package domain

import "github.com/shopspring/decimal"

// SettingType discriminates the two shapes stored in the settings table.
type SettingType string

const (
	SettingSalesFunnel     SettingType = "sales_funnel"
	SettingServiceContract SettingType = "service_contract"
)

func (t SettingType) IsValid() bool {
	return t == SettingSalesFunnel || t == SettingServiceContract
}

// Setting is a sparse configuration row: either stage+probability or team+target.
type Setting struct {
	ID          string           `db:"id" json:"id"`
	SettingType SettingType      `db:"setting_type" json:"settingType"`
	StageName   *string          `db:"stage_name" json:"stageName"`
	Probability *decimal.Decimal `db:"probability" json:"probability"`
	TeamName    *string          `db:"team_name" json:"teamName"`
	Target2026  *decimal.Decimal `db:"target_2026" json:"target2026"`
}

// TeamTargetSetting is a yearly target configured for a team.
type TeamTargetSetting struct {
	Team   string          `json:"team"`
	Target decimal.Decimal `json:"target"`
}

// StageProbability is the configured win probability of a stage.
type StageProbability struct {
	Stage       string          `json:"stage"`
	Probability decimal.Decimal `json:"probability"`
}

// AllSettings bundles every settings view.
type AllSettings struct {
	SalesTargets           []TeamTargetSetting `json:"salesTargets"`
	StageProbabilities     []StageProbability  `json:"stageProbabilities"`
	ServiceContractTargets []TeamTargetSetting `json:"serviceContractTargets"`
}

// TeamTargets extracts team targets from settings rows. A later row for the same
// team overrides the value but keeps the first position.
func TeamTargets(rows []Setting) []TeamTargetSetting {
	out := []TeamTargetSetting{}
	index := map[string]int{}
	for _, row := range rows {
		if row.TeamName == nil || row.Target2026 == nil {
			continue
		}
		if i, ok := index[*row.TeamName]; ok {
			out[i].Target = *row.Target2026
			continue
		}
		index[*row.TeamName] = len(out)
		out = append(out, TeamTargetSetting{Team: *row.TeamName, Target: *row.Target2026})
	}
	return out
}

// StageProbabilities extracts stage probabilities; a missing probability reads as zero.
func StageProbabilities(rows []Setting) []StageProbability {
	out := []StageProbability{}
	index := map[string]int{}
	for _, row := range rows {
		if row.StageName == nil {
			continue
		}
		p := decimal.Zero
		if row.Probability != nil {
			p = *row.Probability
		}
		if i, ok := index[*row.StageName]; ok {
			out[i].Probability = p
			continue
		}
		index[*row.StageName] = len(out)
		out = append(out, StageProbability{Stage: *row.StageName, Probability: p})
	}
	return out
}
