package render

import (
	"encoding/base64"
	"html/template"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/models"

	"github.com/skip2/go-qrcode"
)

const qrSize = 160

// planURL is the public address of a plan page.
func planURL(siteURL string, key models.PlanKey) string {
	return siteURL + "/plans/" + catalog.SlugFor(key)
}

// qrDataURI encodes content as an inline PNG QR code. An empty URL is
// returned when encoding fails so the print view just omits the image.
func qrDataURI(content string) template.URL {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
