package config

// solutionFile is the YAML DTO for pakt.yaml.
//
//	feed: ./feed
//	projects:
//	  ProjectA: ProjectA/packages.config
//	  ProjectB: ""            # defaults to ProjectB/packages.config
type solutionFile struct {
	Feed     string            `yaml:"feed"`
	Projects map[string]string `yaml:"projects"`
}
