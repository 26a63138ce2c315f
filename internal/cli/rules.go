package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/pkg/check"
	_ "github.com/yaklabco/docstyle/pkg/check/rules" // Register built-in rules
)

type rulesFlags struct {
	family string
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Family      string `json:"family"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available style rules",
		Long: `List all available style rules with their IDs, families,
descriptions, default severity, and whether they are enabled by default.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules := check.DefaultRegistry.Rules()

			if flags.family != "" {
				rules = check.DefaultRegistry.RulesInFamily(flags.family)
			}

			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			logger := logging.NewInteractive()

			if len(rules) == 0 {
				logger.Info("no rules registered")
				return nil
			}

			logger.Info("available rules")

			for _, rule := range rules {
				enabled := "yes"
				if !rule.DefaultEnabled() {
					enabled = "no"
				}

				logger.Info(rule.ID(),
					logging.FieldFamily, rule.Family(),
					logging.FieldSeverity, rule.DefaultSeverity(),
					"enabled", enabled,
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.family, "family", "",
		"limit to one family: structure, terminology, grammar, content, formatting, training")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []check.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Family:      rule.Family(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
