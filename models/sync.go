package models

// FeatureMultipleShoppingLists is the feature flag enabling more than the
// default shopping list.
const FeatureMultipleShoppingLists = "multiple_shopping_lists"

// SyncPhase is the state of the sync orchestrator.
type SyncPhase int

const (
	PhaseIdle SyncPhase = iota
	PhaseCheckingTimestamp
	PhaseDownloading
	PhaseReconciling
	PhasePushingMutations
	PhaseTidyingUp
	// PhaseOffline is entered on any network failure and left only by a
	// cycle that reaches the server again.
	PhaseOffline
)

func (p SyncPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCheckingTimestamp:
		return "checking_timestamp"
	case PhaseDownloading:
		return "downloading"
	case PhaseReconciling:
		return "reconciling"
	case PhasePushingMutations:
		return "pushing_mutations"
	case PhaseTidyingUp:
		return "tidying_up"
	case PhaseOffline:
		return "offline"
	default:
		return "unknown"
	}
}
