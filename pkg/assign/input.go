package assign

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// GroupConstraint holds the size bounds of a single group. A group missing
// from the input's group mapping has an implicit MaxSize of 0 and therefore
// cannot take members.
type GroupConstraint struct {
	MinSize uint64 `mapstructure:"minSize"`
	MaxSize uint64 `mapstructure:"maxSize"`
}

// Person describes a participant: the groups they may join and how many
// memberships they can hold at once.
type Person struct {
	Name          string   `mapstructure:"name"`
	AllowedGroups []string `mapstructure:"allowedGroups"`
	MaxGroups     uint64   `mapstructure:"maxGroups"`
}

type ModelInput struct {
	Groups map[string]GroupConstraint `mapstructure:"groups"`
	People []Person                   `mapstructure:"people"`
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	err = json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	err = mapstructure.Decode(inputJson, &input)
	if err != nil {
		return ModelInput{}, err
	}

	return input, nil
}
