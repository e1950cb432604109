package domain

// Stage is the pipeline position of an opportunity or service contract.
type Stage string

const (
	StageCold   Stage = "Cold"
	StageWarm   Stage = "Warm"
	StageHot    Stage = "Hot"
	StageWon    Stage = "Won"
	StageClosed Stage = "Closed"
	StageLost   Stage = "Lost"
)

// PipelineStages lists the opportunity stages in board order.
var PipelineStages = []Stage{StageCold, StageWarm, StageHot, StageWon, StageClosed, StageLost}

// ContractStages is the restricted stage set of service contracts.
var ContractStages = []Stage{StageWarm, StageHot, StageClosed}

func (s Stage) IsValid() bool {
	return containsStage(PipelineStages, s)
}

// IsContractStage reports whether s is allowed on a service contract.
func (s Stage) IsContractStage() bool {
	return containsStage(ContractStages, s)
}

func containsStage(set []Stage, s Stage) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}

// DealStatus tracks task completion independently of the pipeline stage.
type DealStatus string

const (
	StatusNotStarted DealStatus = "Not started"
	StatusInProgress DealStatus = "In progress"
	// StatusComplete keeps the stored spelling.
	StatusComplete DealStatus = "Complate"
)

func (s DealStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// Team is the sales team an opportunity is assigned to.
type Team string

const (
	TeamFAS    Team = "FAS"
	TeamPAS    Team = "PAS"
	TeamCCTV   Team = "CCTV"
	TeamAccess Team = "Access"
	TeamOther  Team = "Other"
	TeamSupply Team = "Бараа нийлүүлэлт"
)

const unknownTeam = string(TeamOther)

func (t Team) IsValid() bool {
	switch t {
	case TeamFAS, TeamPAS, TeamCCTV, TeamAccess, TeamOther, TeamSupply:
		return true
	}
	return false
}

func teamKey(t *Team) string {
	if t == nil || *t == "" {
		return unknownTeam
	}
	return string(*t)
}
