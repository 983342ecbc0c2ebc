package clipvault

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
)

// Prop is a custom frontmatter property added to every note.
type Prop struct {
	Key   string `json:"k"`
	Value string `json:"v"`
}

// Config describes where and how captures are saved.
type Config struct {
	Vault  string `json:"vault"`
	Folder string `json:"folder"`

	// Canvas saves captures as .canvas files instead of Markdown notes.
	Canvas bool `json:"canvas"`

	Props []Prop `json:"props"`

	// Name and Emoji label the capture shortcut.
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Validate returns an error if the config cannot be used to save captures.
func (c *Config) Validate() error {
	if c.Vault == "" {
		return Errorf(EINVALID, "vault name required")
	}
	for _, p := range c.Props {
		if p.Key == "" && p.Value != "" {
			return Errorf(EINVALID, "property %q has no key", p.Value)
		}
	}
	return nil
}

// URL parameter names used by EncodeConfig and DecodeConfig.
const (
	paramVault  = "v"
	paramFolder = "f"
	paramCanvas = "canvas"
	paramName   = "n"
	paramEmoji  = "e"
	paramProps  = "props"
)

// EncodeConfig encodes c as URL query parameters. Empty fields are omitted;
// props are stored as base64-encoded JSON.
func EncodeConfig(c Config) url.Values {
	params := url.Values{}
	if c.Vault != "" {
		params.Set(paramVault, c.Vault)
	}
	if c.Folder != "" {
		params.Set(paramFolder, c.Folder)
	}
	if c.Canvas {
		params.Set(paramCanvas, "1")
	}
	if c.Name != "" {
		params.Set(paramName, c.Name)
	}
	if c.Emoji != "" {
		params.Set(paramEmoji, c.Emoji)
	}
	if len(c.Props) > 0 {
		if b, err := json.Marshal(c.Props); err == nil {
			params.Set(paramProps, base64.StdEncoding.EncodeToString(b))
		}
	}
	return params
}

// DecodeConfig reads a Config from URL query parameters.
// Undecodable props are dropped rather than reported.
func DecodeConfig(params url.Values) Config {
	c := Config{
		Vault:  params.Get(paramVault),
		Folder: params.Get(paramFolder),
		Canvas: params.Get(paramCanvas) == "1",
		Name:   params.Get(paramName),
		Emoji:  params.Get(paramEmoji),
	}

	if raw := params.Get(paramProps); raw != "" {
		b, err := base64.StdEncoding.DecodeString(raw)
		if err == nil {
			var props []Prop
			if err := json.Unmarshal(b, &props); err == nil {
				c.Props = props
			}
		}
	}
	return c
}
