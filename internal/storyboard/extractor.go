package storyboard

import (
	"encoding/base64"

	"github.com/lehigh-university-libraries/storyboarder/internal/providers"
)

// PanelImage is the image extracted from one model response
type PanelImage struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the image as data:<mime>;base64,<payload>
func (p PanelImage) DataURI() string {
	return "data:" + p.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ExtractImage returns the first inline-data part of the first candidate.
// It reports false when the response carries no image, including nil
// responses and empty candidate lists. The MIME type is passed through as-is.
func ExtractImage(resp *providers.Response) (PanelImage, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return PanelImage{}, false
	}

	for _, part := range resp.Candidates[0].Parts {
		if part.InlineData != nil {
			return PanelImage{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}, true
		}
	}

	return PanelImage{}, false
}
