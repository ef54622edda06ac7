package palette

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ylc3000/galaxy/colorspace"
)

// NamedColor is one entry from the color naming service
type NamedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Sample converts the named color to a sample, validating its hex
func (n NamedColor) Sample() (colorspace.Sample, error) {
	c, err := colorspace.ParseHex(n.Hex)
	if err != nil {
		return colorspace.Sample{}, err
	}
	return colorspace.NewSample(c), nil
}

// namedResponse matches the service's JSON document shape
type namedResponse struct {
	Colors []NamedColor `json:"colors"`
}

// FetchNamed performs the one-shot named-palette fetch. The caller owns
// the context deadline; any failure is returned for logging and the demo
// continues with whatever data it already has
func FetchNamed(ctx context.Context, client *http.Client, url string) ([]NamedColor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build palette request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch named palette: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch named palette: status %s", resp.Status)
	}

	var doc namedResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode named palette: %w", err)
	}
	return doc.Colors, nil
}
