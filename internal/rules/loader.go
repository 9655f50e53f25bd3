package rules

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"tokenscan/internal/logging"
	"tokenscan/internal/report"
)

// ruleFile mirrors the YAML rule file layout:
//
//	patterns:
//	  - pattern:
//	      name: aws-access-key
//	      regex: AKIA[0-9A-Z]{16}
type ruleFile struct {
	Patterns []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	Pattern patternSpec `yaml:"pattern"`
}

type patternSpec struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

// Loader reads rule files from a directory.
type Loader struct {
	fs      afero.Fs
	printer *report.Printer
}

// NewLoader creates a loader that reads through fs and reports recoverable
// load problems through printer.
func NewLoader(fs afero.Fs, printer *report.Printer) *Loader {
	return &Loader{fs: fs, printer: printer}
}

// Load reads every *.yml and *.yaml file in dir (non-recursive) and compiles
// the rules they declare. Files that fail to read or parse are skipped with a
// warning; entries without a regex, or whose regex does not compile, are
// dropped without affecting sibling entries. An empty result is not an error
// here; callers decide whether zero rules is fatal.
func (l *Loader) Load(ctx context.Context, dir string) (*Set, error) {
	var files []string
	for _, glob := range []string{"*.yml", "*.yaml"} {
		matched, err := afero.Glob(l.fs, filepath.Join(dir, glob))
		if err != nil {
			return nil, fmt.Errorf("failed to glob rule files in %s: %w", dir, err)
		}
		files = append(files, matched...)
	}
	sort.Strings(files)

	set := &Set{}
	for _, path := range files {
		loaded := l.loadFile(ctx, path)
		if len(loaded) == 0 {
			continue
		}
		set.files = append(set.files, FileRules{Path: path, Rules: loaded})
		set.total += len(loaded)
	}

	return set, nil
}

func (l *Loader) loadFile(ctx context.Context, path string) []Rule {
	log := logging.Get(ctx)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		l.printer.Warnf("Failed to load %s: %v", path, err)
		log.Warn().Err(err).Str("file", path).Msg("rule file unreadable")
		return nil
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		l.printer.Warnf("Failed to load %s: %v", path, err)
		log.Warn().Err(err).Str("file", path).Msg("rule file failed to parse")
		return nil
	}

	if len(rf.Patterns) == 0 {
		log.Debug().Str("file", path).Msg("rule file declares no patterns")
		return nil
	}

	rules := make([]Rule, 0, len(rf.Patterns))
	for _, entry := range rf.Patterns {
		spec := entry.Pattern

		if spec.Regex == "" {
			log.Debug().Str("file", path).Str("name", spec.Name).Msg("rule entry missing regex")
			continue
		}

		compiled, err := regexp.Compile(spec.Regex)
		if err != nil {
			log.Debug().Err(err).Str("file", path).Str("regex", spec.Regex).Msg("rule regex failed to compile")
			continue
		}

		name := spec.Name
		if name == "" {
			name = DefaultName
		}

		rules = append(rules, Rule{Name: name, Pattern: compiled})
	}

	return rules
}
