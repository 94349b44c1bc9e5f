package mograph

import "github.com/cj-mills/trimotion/studio"

// NewProject binds a triangle motion graphic to a studio project. When
// configPath is empty the built-in defaults are used; otherwise the file is
// loaded once up front, to fail fast on bad input, and again on every build
// so that watch mode picks up config edits.
func NewProject(configPath string, pc *studio.ProjectConfig) (*studio.Project, error) {
	if configPath != "" {
		if _, err := LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	return &studio.Project{
		Config: pc,
		FnBuild: func(doc *studio.Document) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return Build(doc, cfg)
		},
	}, nil
}
