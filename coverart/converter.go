package coverart

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/qeesung/image2ascii/convert"
)

// Converter renders cover art as ASCII for the status pane. It fetches the
// credential-embedded art URL itself, the external player never sees it.
type Converter struct {
	httpClient *http.Client
	converter  *convert.ImageConverter
}

// NewConverter creates a new cover art converter
func NewConverter() *Converter {
	return &Converter{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		converter: convert.NewImageConverter(),
	}
}

// ConvertFromURL downloads and converts an image URL to ASCII art
func (c *Converter) ConvertFromURL(url string) (string, error) {
	if url == "" {
		return c.getPlaceholder(), nil
	}

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return c.getPlaceholder(), fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.getPlaceholder(), fmt.Errorf("status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return c.getPlaceholder(), fmt.Errorf("failed to decode: %w", err)
	}

	convertOptions := convert.DefaultOptions
	convertOptions.FixedWidth = 25
	convertOptions.FixedHeight = 12
	convertOptions.Colored = false // ANSI colors break tview rendering

	return c.converter.Image2ASCIIString(img, &convertOptions), nil
}

// getPlaceholder returns a placeholder when cover art is not available
func (c *Converter) getPlaceholder() string {
	return `[darkgray]┌────────────────────────┐
[darkgray]│                        │
[darkgray]│        ♫  ♪  ♫         │
[darkgray]│    no cover art        │
[darkgray]│        ♫  ♪  ♫         │
[darkgray]│                        │
[darkgray]└────────────────────────┘`
}
