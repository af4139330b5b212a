package catalog

// Document is the decoded form of a catalog file. The json tags are used
// when the document is handed to the CUE schema.
type Document struct {
	Domains []DomainSpec `yaml:"domains" json:"domains"`
}

// DomainSpec declares one table domain.
type DomainSpec struct {
	// Name is the domain name. Equivalents in other tables refer to it.
	Name string `yaml:"name" json:"name"`

	// UUID optionally fixes the domain identity.
	UUID string `yaml:"uuid,omitempty" json:"uuid,omitempty"`

	// Codes is the code table.
	Codes []CodeSpec `yaml:"codes" json:"codes"`
}

// CodeSpec declares one code of a table domain.
type CodeSpec struct {
	Value       int32            `yaml:"value" json:"value"`
	Name        string           `yaml:"name" json:"name"`
	Message     string           `yaml:"message" json:"message"`
	Success     bool             `yaml:"success,omitempty" json:"success,omitempty"`
	Generic     string           `yaml:"generic,omitempty" json:"generic,omitempty"`
	Equivalents []EquivalentSpec `yaml:"equivalents,omitempty" json:"equivalents,omitempty"`
}

// EquivalentSpec declares that a code means the same as the code with Value
// in the domain named Domain.
type EquivalentSpec struct {
	Domain string `yaml:"domain" json:"domain"`
	Value  int64  `yaml:"value" json:"value"`
}
