package imagery

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Sample is one image of the built-in illustration set.
type Sample struct {
	Name    string
	Caption string
	Color   string
}

// Samples lists the illustrations referenced by the built-in corpora.
var Samples = []Sample{
	{Name: "company_overview.png", Caption: "Visual Alpha\nFintech Solutions", Color: "#2563eb"},
	{Name: "company_timeline.png", Caption: "Founded 2019\nTokyo, Japan", Color: "#059669"},
	{Name: "team_structure.png", Caption: "15-20 Staff\nGlobal Team", Color: "#dc2626"},
	{Name: "leadership_team.png", Caption: "Jeffrey Tsui\nCEO", Color: "#7c3aed"},
	{Name: "client_logos.png", Caption: "Enterprise Clients\nInstitutional", Color: "#ea580c"},
	{Name: "tech_stack.png", Caption: "NodeJS + React\nAWS + Docker", Color: "#0891b2"},
	{Name: "services_overview.png", Caption: "Data Processing\nAutomation", Color: "#be185d"},
	{Name: "future_goals.png", Caption: "Global Expansion\nFuture Goals", Color: "#16a34a"},
}

// WriteSamples renders every sample into dir, creating it if needed.
// Existing files are left alone. Returns the paths written.
func WriteSamples(dir string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var written []string
	for _, s := range Samples {
		path := filepath.Join(dir, s.Name)
		if _, err := os.Stat(path); err == nil {
			logger.Debug("sample image exists", "path", path)
			continue
		}

		bg, err := ParseHex(s.Color)
		if err != nil {
			return written, err
		}
		data, err := Render(PlaceholderWidth, PlaceholderHeight, bg, s.Caption)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, err
		}
		logger.Info("created sample image", "path", path)
		written = append(written, path)
	}
	return written, nil
}
