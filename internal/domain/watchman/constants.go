package watchman

// Verdict detail strings returned with every analysis
const (
	DetailInjectionDetected = "potential prompt injection detected"
	DetailPromptClear       = "prompt seems clear"
)

// Detector name constants
const (
	DetectorHeuristic = "heuristic"
	DetectorRemote    = "remote"
)
