package audio

// Cue names known to the dispatcher.
const (
	CueClean      = "clean"
	CueDestroy    = "destroy"
	CueStageClear = "stage_clear"
	CueWaterJet   = "water_jet"
)

// OneShotCues are played with Play; LoopCue is managed by StartLoop/StopLoop.
var OneShotCues = []string{CueClean, CueDestroy, CueStageClear}

const LoopCue = CueWaterJet

// AllCues lists every cue preloaded by Load.
func AllCues() []string {
	return append(append([]string(nil), OneShotCues...), LoopCue)
}

// cueFiles maps a cue to its file name without extension.
var cueFiles = map[string]string{
	CueClean:      "clean",
	CueDestroy:    "destroy",
	CueStageClear: "stage-clear",
	CueWaterJet:   "water-jet",
}

// supported extensions in lookup order
var cueExtensions = []string{".wav", ".mp3"}
