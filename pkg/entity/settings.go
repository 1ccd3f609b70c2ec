package entity

// Enterprise is the issuing company block of the settings document.
type Enterprise struct {
	Name    string `yaml:"name"`
	Siren   Siren  `yaml:"siren"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Postal  string `yaml:"postal"`
	Phone   string `yaml:"phone"`
	Title   string `yaml:"title"`
	Tva     string `yaml:"tva"`
}

// Settings is the single enterprise/settings document of a workspace.
// LLMInstruct and MistralAPIKey only appear in the file when set.
type Settings struct {
	Enterprise    Enterprise `yaml:"enterprise"`
	LawRules      string     `yaml:"law_rules"`
	Politeness    string     `yaml:"politeness"`
	LLMInstruct   string     `yaml:"llm_instruct,omitempty"`
	MistralAPIKey string     `yaml:"mistral_api_key,omitempty"`
}
