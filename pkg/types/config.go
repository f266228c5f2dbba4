// Package types holds configuration shared between the dreadmd CLI and
// the conversion stages.
package types

// SourceConfig holds settings for reading an article collection.
type SourceConfig struct {
	// Extension is the file extension articles carry (default "txt").
	Extension string `json:"extension" yaml:"extension"`
}

// VaultConfig holds settings for the output vault.
type VaultConfig struct {
	// Dir is the vault directory, used when the convert command is not
	// given one on the command line.
	Dir string `json:"dir" yaml:"dir"`
	// WriteReadme controls whether a generated "00 - READ ME FIRST" note
	// is written when enough material is harvested (default true).
	WriteReadme bool `json:"write_readme" yaml:"write_readme"`
}

// CatalogConfig holds settings for catalog queries.
type CatalogConfig struct {
	// MaxResults caps the number of dangling triggers reported; zero
	// means no cap.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ConvertConfig groups the settings for one conversion run.
type ConvertConfig struct {
	Source SourceConfig `json:"source" yaml:"source"`
	Vault  VaultConfig  `json:"vault" yaml:"vault"`
}
