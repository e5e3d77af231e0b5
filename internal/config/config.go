package config

import (
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultPath is read when present and no path is given explicitly.
const DefaultPath = "minic.cue"

const schemaSrc = `
dump?: {
	tokens?: bool
	ast?:    bool
}
log?: {
	level?:   "debug" | "info" | "warn" | "error"
	file?:    string
	journal?: bool
}
`

type Config struct {
	Dump Dump
	Log  Log
}

type Dump struct {
	Tokens bool
	AST    bool
}

type Log struct {
	Level   string
	File    string
	Journal bool
}

func Default() Config {
	return Config{
		Dump: Dump{AST: true},
		Log:  Log{Level: "warn"},
	}
}

// Load applies each file over the defaults in order, later files win.
func Load(filePaths ...string) (Config, error) {
	cfg := Default()

	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + schemaSrc + "})")
	if err := schema.Err(); err != nil {
		return cfg, err
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return cfg, err
		}

		value := ctx.CompileBytes(
			content,
			cue.Filename(filePath),
		)
		if err = value.Err(); err != nil {
			return cfg, err
		}
		if err := schema.Unify(value).Validate(); err != nil {
			return cfg, err
		}

		for path, target := range map[string]any{
			"dump.tokens": &cfg.Dump.Tokens,
			"dump.ast":    &cfg.Dump.AST,
			"log.level":   &cfg.Log.Level,
			"log.file":    &cfg.Log.File,
			"log.journal": &cfg.Log.Journal,
		} {
			if err := assign(value, path, target); err != nil {
				return cfg, err
			}
		}
	}

	return cfg, nil
}

func assign(value cue.Value, path string, target any) error {
	v := value.LookupPath(cue.ParsePath(path))
	if !v.Exists() {
		return nil
	}
	return v.Decode(target)
}
