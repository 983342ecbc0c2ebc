package main

import (
	"context"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clipvault"
	"github.com/fwojciec/clipvault/capture"
)

// engineTrafilatura selects the alternate article extractor.
const engineTrafilatura = "trafilatura"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Config   clipvault.Config
	Articles clipvault.ArticleExtractor
	Videos   clipvault.VideoExtractor
	Capturer *capture.Capturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ConfigFile kong.ConfigFlag `name:"config-file" help:"Load flag defaults from a JSON file"`
	Verbose    bool            `short:"v" env:"CLIPVAULT_VERBOSE" help:"Log fetches and extractions to stderr"`

	VaultDir string        `name:"vault-dir" env:"CLIPVAULT_VAULT_DIR" type:"path" help:"Vault directory notes are written into"`
	Vault    string        `env:"CLIPVAULT_VAULT" help:"Vault name for obsidian:// URIs (default: base name of --vault-dir)"`
	Folder   string        `env:"CLIPVAULT_FOLDER" help:"Folder inside the vault"`
	Canvas   bool          `env:"CLIPVAULT_CANVAS" help:"Save captures as .canvas files"`
	Props    []string      `name:"prop" sep:"none" help:"Extra frontmatter property as key=value (repeatable)"`
	Params   string        `env:"CLIPVAULT_PARAMS" help:"Settings as encoded URL parameters (see 'config encode')"`
	Engine   string        `enum:"readability,trafilatura" default:"readability" env:"CLIPVAULT_ENGINE" help:"Article extraction engine"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`

	Capture CaptureCmd `cmd:"" help:"Capture one or more web pages"`
	Note    NoteCmd    `cmd:"" help:"Save a manual note without fetching anything"`
	Extract ExtractCmd `cmd:"" help:"Extract content from a saved HTML page and print it as JSON"`
	Config  ConfigCmd  `cmd:"" help:"Encode or decode settings as URL parameters"`
}

// config merges --params with the individual flags, flags winning.
func (c *CLI) config() clipvault.Config {
	var cfg clipvault.Config
	if c.Params != "" {
		if params, err := url.ParseQuery(strings.TrimPrefix(c.Params, "?")); err == nil {
			cfg = clipvault.DecodeConfig(params)
		}
	}

	if c.Vault != "" {
		cfg.Vault = c.Vault
	}
	if cfg.Vault == "" && c.VaultDir != "" {
		cfg.Vault = filepath.Base(c.VaultDir)
	}
	if c.Folder != "" {
		cfg.Folder = c.Folder
	}
	if c.Canvas {
		cfg.Canvas = true
	}
	for _, p := range c.Props {
		key, value, _ := strings.Cut(p, "=")
		cfg.Props = append(cfg.Props, clipvault.Prop{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return cfg
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs to capture"`
	What        string   `help:"Headline for the note (default: the page URL)"`
	Who         string   `help:"Who the capture is about or from"`
	Why         string   `help:"Why the capture matters"`
	Browser     bool     `short:"b" help:"Render pages in headless Chrome before extracting"`
	ChromeBin   string   `name:"chrome-bin" env:"CLIPVAULT_CHROME_BIN" help:"Chrome or Chromium binary for --browser"`
	Headful     bool     `help:"Show the browser window with --browser"`
	Markdown    bool     `short:"m" help:"Convert article HTML to Markdown instead of plain text"`
	URI         bool     `help:"Print an obsidian:// URI instead of writing the note"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent captures when several URLs are given"`
}

// NoteCmd is the "note" subcommand.
type NoteCmd struct {
	What string `arg:"" help:"Note text; a URL in it becomes the canvas link"`
	Who  string `help:"Who the note is about or from"`
	Why  string `help:"Why the note matters"`
	URI  bool   `help:"Print an obsidian:// URI instead of writing the note"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `required:"" help:"URL the HTML was retrieved from; selects the extractor"`
	File string `arg:"" optional:"" default:"-" help:"HTML file to read, or - for stdin"`
}

// ConfigCmd groups the settings codec subcommands.
type ConfigCmd struct {
	Encode ConfigEncodeCmd `cmd:"" help:"Print the current settings as URL parameters"`
	Decode ConfigDecodeCmd `cmd:"" help:"Print URL parameters as JSON settings"`
}

// ConfigEncodeCmd is the "config encode" subcommand.
type ConfigEncodeCmd struct{}

// ConfigDecodeCmd is the "config decode" subcommand.
type ConfigDecodeCmd struct {
	Params string `arg:"" help:"Encoded URL parameters, with or without a leading ?"`
}
