package clix

import (
	"github.com/spf13/pflag"

	"parley/pkg/categorizer"
)

type RespondParams struct {
	Category    *categorizer.Category
	UseExternal bool
	AsJSON      bool
}

// ParseRespondFlags collects the shared respond flags. An empty
// category flag means "let the rule engine decide"; anything else must
// be a known label.
func ParseRespondFlags(flags *pflag.FlagSet) (RespondParams, error) {
	params := RespondParams{}
	params.UseExternal, _ = flags.GetBool("external")
	params.AsJSON, _ = flags.GetBool("json")

	label, _ := flags.GetString("category")
	if label != "" {
		cat, err := categorizer.ParseCategory(label)
		if err != nil {
			return RespondParams{}, err
		}
		params.Category = &cat
	}
	return params, nil
}
