package gen

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/membergen"
)

// Configuration keys read by the core plugins.
const (
	// UseHashFromRoot folds the parent HashCode and Equal into the generated ones.
	UseHashFromRoot = "useHashFromRoot"
	// UseStringFromRoot appends the parent String to the generated one.
	UseStringFromRoot = "useStringFromRoot"
	// IgnoreStaticFieldsInString leaves static fields out of String.
	IgnoreStaticFieldsInString = "ignoreStaticFieldsInString"
	// AppendHashInString prints the hash code first in String.
	AppendHashInString = "appendHashInString"
	// AnnotateAccessorsInsteadOfFields puts validation constraints on getters.
	AnnotateAccessorsInsteadOfFields = "annotateAccessorsInsteadOfFields"
	// MatchEmailAsPattern matches raw column names against the email pattern
	// instead of searching for it literally.
	MatchEmailAsPattern = "matchEmailAsPattern"
)

// aliases holds the former names of the configuration keys.
var aliases = map[string][]string{
	UseHashFromRoot:                  {"useEqualsHashCodeFromRoot"},
	UseStringFromRoot:                {"useToStringFromRoot"},
	IgnoreStaticFieldsInString:       {"ignoreStaticFields"},
	AppendHashInString:               {"appendHashcode"},
	AnnotateAccessorsInsteadOfFields: {"annotateGetters"},
}

// Properties is the flat configuration of one plugin.
type Properties map[string]string

// Get returns the value of key, falling back to its former names.
func (p Properties) Get(key string) (string, bool) {
	if v, ok := p[key]; ok {
		return v, true
	}
	for _, alias := range aliases[key] {
		if v, ok := p[alias]; ok {
			return v, true
		}
	}
	return "", false
}

// Bool reports if key is set to "true", in any case. Unset keys are false.
func (p Properties) Bool(key string) bool {
	v, _ := p.Get(key)
	return IsTrue(v)
}

// IsTrue reports if s is "true", in any case.
func IsTrue(s string) bool {
	return strings.EqualFold(s, "true")
}

// UnmarshalYAML reads a mapping of scalars.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return membergen.NewConfigError("properties", nil, fmt.Sprintf("expected a mapping, got %s", kindName(node.Kind)))
	}
	props := make(Properties, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return membergen.NewConfigError(k.Value, nil, fmt.Sprintf("expected a scalar, got %s", kindName(v.Kind)))
		}
		props[k.Value] = v.Value
	}
	*p = props
	return nil
}

// PluginConfig is the configuration of one plugin.
type PluginConfig struct {
	Name       string
	Properties Properties
}

// PluginConfigs is an ordered plugin configuration document:
//
//	equalsHashCode:
//	  useHashFromRoot: true
//	toString:
//	  ignoreStaticFieldsInString: true
//	json: {}
type PluginConfigs []PluginConfig

// UnmarshalYAML reads the plugins in document order.
func (cs *PluginConfigs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return membergen.NewConfigError("plugins", nil, fmt.Sprintf("expected a mapping, got %s", kindName(node.Kind)))
	}
	configs := make(PluginConfigs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i], node.Content[i+1]
		pc := PluginConfig{Name: name.Value, Properties: Properties{}}
		// A plugin listed without properties ("json:") decodes to a null scalar.
		if value.Tag != "!!null" {
			if err := value.Decode(&pc.Properties); err != nil {
				return fmt.Errorf("plugin %s: %w", name.Value, err)
			}
		}
		configs = append(configs, pc)
	}
	*cs = configs
	return nil
}

// LoadProperties reads a YAML plugin configuration document.
func LoadProperties(data []byte) (PluginConfigs, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, membergen.NewConfigError("plugins", nil, err.Error())
	}
	// An empty document configures no plugin.
	if len(doc.Content) == 0 {
		return nil, nil
	}
	var configs PluginConfigs
	if err := doc.Content[0].Decode(&configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
