package config

import (
	"fmt"
	"strings"
)

// templateHeader opens every generated configuration file.
const templateHeader = `# mdwidth configuration.
#
# Prose lines wider than 80 characters are reported. The limit and the
# exemptions (headings, tables, reference definitions, code and math
# blocks) are fixed; this file only controls what is scanned and how
# results are reported.
`

// GenerateTemplate renders cfg as a configuration file with a header and a
// commented reference of every option.
func GenerateTemplate(cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	body, err := cfg.ToYAML()
	if err != nil {
		return nil, err
	}

	var builder strings.Builder
	builder.WriteString(templateHeader)
	builder.WriteString("\n")

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && trimmed != "{}" {
		builder.WriteString(trimmed)
		builder.WriteString("\n\n")
	}

	builder.WriteString("# Options:\n")
	builder.WriteString("#   root: book/src          document root used when no paths are given\n")
	builder.WriteString("#   ignore: [\"drafts/**\"]   glob patterns to skip; ** spans directories\n")
	builder.WriteString("#   jobs: 0                 parallel workers, 0 = one per CPU\n")
	fmt.Fprintf(&builder, "#   format: %-15s %s, %s, %s or %s\n", FormatText, FormatText, FormatTable, FormatJSON, FormatSARIF)
	fmt.Fprintf(&builder, "#   color: %-16s %s, %s or %s\n", ColorAuto, ColorAuto, ColorAlways, ColorNever)
	builder.WriteString("#   follow_symlinks: false  traverse directory symlinks\n")

	return []byte(builder.String()), nil
}
