package ignore

// Presets are commonly ignored VCS, dependency, cache and build directory names.
// Short generic names ("out", "tmp", "pkg") are left out on purpose: as substrings
// they would prune far more than intended.
var Presets = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// JavaScript/Node
	"node_modules",
	".npm",
	".yarn",
	".pnpm-store",
	".next",
	".nuxt",
	"bower_components",
	".turbo",
	".parcel-cache",

	// Python
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	".ruff_cache",
	".venv",
	".tox",
	"site-packages",
	".egg-info",

	// Rust/Java/Kotlin
	"target",
	".gradle",
	".m2",
	".cargo",

	// IDE
	".idea",
	".vscode",

	// Caches
	".cache",
	"__MACOSX",
	".Trash",

	// Mobile
	"Pods",
	"DerivedData",

	// Infra
	".terraform",
	".vagrant",
}

// WithPresets returns patterns followed by every preset not already present.
func WithPresets(patterns []string) []string {
	seen := make(map[string]bool, len(patterns)+len(Presets))
	out := make([]string, 0, len(patterns)+len(Presets))
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, p := range Presets {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
