package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
)

//go:embed template/guidance.txt
var guidanceRaw string

// GuidanceSystem returns the system instructions for the guidance backends.
// The embed is compile-time, so this is safe to call concurrently.
func GuidanceSystem() string {
	return strings.TrimSpace(guidanceRaw)
}

// GuidanceUserContext renders the per-turn context block sent to the
// guidance backend after the system instructions.
func GuidanceUserContext(req contractx.GuidanceRequest) string {
	return strings.Join([]string{
		fmt.Sprintf("Disaster type (may be generic): %s", req.DisasterType),
		fmt.Sprintf("Phase: %s", req.Phase),
		fmt.Sprintf("Region or country (if known): %s", req.Region),
		fmt.Sprintf("User message: %s", req.RawInput),
	}, "\n")
}
