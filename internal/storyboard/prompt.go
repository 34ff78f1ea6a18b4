package storyboard

import (
	"fmt"
)

const (
	// PanelCount is the number of panels in every storyboard
	PanelCount = 4
	// PanelAspectRatio is applied to every panel request
	PanelAspectRatio = "16:9"
	// Style is the fixed artistic direction for all panels
	Style = "Cyberpunk Neon City at Night with Rain"
)

// PanelRequest is one of the PanelCount generation requests issued per story
type PanelRequest struct {
	Number      int
	Prompt      string
	AspectRatio string
}

// BuildPanelPrompt generates the prompt for a single panel.
// The full story is embedded verbatim in every panel so each call can aim
// for the same character and setting on its own.
func BuildPanelPrompt(story string, panelNumber int) string {
	return fmt.Sprintf(`As a Storyboard Artist Bot, visualize the following narrative.
Artistic Style: Your artistic style must be strictly "%s".
Visual Consistency: It is CRITICAL to ensure the main character and environment maintain high visual consistency across all %d panels.

Full Story: "%s"

Your Task: Generate ONLY the image for Panel %d of a %d-panel storyboard sequence based on the story.`,
		Style,
		PanelCount,
		story,
		panelNumber,
		PanelCount,
	)
}

// BuildPanelRequests returns the requests for panels 1..PanelCount in order
func BuildPanelRequests(story string) []PanelRequest {
	reqs := make([]PanelRequest, 0, PanelCount)
	for n := 1; n <= PanelCount; n++ {
		reqs = append(reqs, PanelRequest{
			Number:      n,
			Prompt:      BuildPanelPrompt(story, n),
			AspectRatio: PanelAspectRatio,
		})
	}
	return reqs
}
