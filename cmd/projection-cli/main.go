// Command projection-cli composes content into slotted wrappers from the
// terminal. Wrappers come from a catalog directory (or the builtin catalog)
// or from a markup file; content blocks arrive as JSON or through an
// interactive prompt session.
//
// Usage:
//
//	projection-cli -list
//	projection-cli -wrapper card -content blocks.json -output out.html
//	projection-cli -markup-file wrapper.html -content '[{"markup":"Alert!"}]'
//	projection-cli -interactive
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	projection "github.com/goliatone/go-projection"
	"github.com/goliatone/go-projection/pkg/catalog"
	"github.com/goliatone/go-projection/pkg/orchestrator"
)

type cliOptions struct {
	wrapperID   string
	markupFile  string
	content     string
	contentFile string
	values      string
	renderer    string
	catalogDir  string
	output      string
	sanitize    bool
	interactive bool
	list        bool
}

func main() {
	opts := cliOptions{}
	flag.StringVar(&opts.wrapperID, "wrapper", "", "catalogued wrapper id to compose into")
	flag.StringVar(&opts.markupFile, "markup-file", "", "path to wrapper markup (alternative to -wrapper)")
	flag.StringVar(&opts.content, "content", "", "content blocks as a JSON array")
	flag.StringVar(&opts.contentFile, "content-file", "", "path to a JSON file with content blocks")
	flag.StringVar(&opts.values, "values", "", "template values as a JSON object")
	flag.StringVar(&opts.renderer, "renderer", "", "renderer name (default html)")
	flag.StringVar(&opts.catalogDir, "catalog", "", "directory of catalog documents (default builtin catalog)")
	flag.StringVar(&opts.output, "output", "", "output file path (default stdout)")
	flag.BoolVar(&opts.sanitize, "sanitize", false, "sanitize projected content")
	flag.BoolVar(&opts.interactive, "interactive", false, "pick a wrapper and fill slots interactively")
	flag.BoolVar(&opts.list, "list", false, "list catalogued wrappers and registered renderers")
	flag.Parse()

	if err := run(context.Background(), opts); err != nil {
		log.Fatalf("projection-cli: %v", err)
	}
}

func run(ctx context.Context, opts cliOptions) error {
	store, err := loadCatalog(opts.catalogDir)
	if err != nil {
		return err
	}

	svc, err := projection.New(orchestrator.WithCatalog(store))
	if err != nil {
		return err
	}

	if opts.list {
		return printCatalog(svc, store)
	}

	req := orchestrator.Request{
		Wrapper:  opts.wrapperID,
		Renderer: opts.renderer,
		Sanitize: opts.sanitize,
	}

	if opts.markupFile != "" {
		raw, err := os.ReadFile(opts.markupFile)
		if err != nil {
			return fmt.Errorf("read wrapper markup: %w", err)
		}
		req.Wrapper = ""
		req.Markup = string(raw)
		req.Name = wrapperNameFromPath(opts.markupFile)
	}

	if opts.interactive {
		if err := promptRequest(store, &req); err != nil {
			return err
		}
	} else {
		blocks, err := loadBlocks(opts)
		if err != nil {
			return err
		}
		req.Blocks = blocks
	}

	if opts.values != "" {
		values := map[string]any{}
		if err := json.Unmarshal([]byte(opts.values), &values); err != nil {
			return fmt.Errorf("parse -values: %w", err)
		}
		req.Values = values
	}

	out, err := svc.Compose(ctx, req)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Printf("wrote %d bytes to %s", len(out), opts.output)
	return nil
}

// wrapperNameFromPath derives a wrapper name from a markup file path, the
// same way the scanner names wrappers from their source location.
func wrapperNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func loadCatalog(dir string) (*catalog.Store, error) {
	if dir == "" {
		return catalog.Builtin()
	}
	store, err := catalog.LoadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", dir, err)
	}
	return store, nil
}

func loadBlocks(opts cliOptions) ([]projection.ContentBlock, error) {
	raw := opts.content
	if opts.contentFile != "" {
		data, err := os.ReadFile(opts.contentFile)
		if err != nil {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		raw = string(data)
	}
	if raw == "" {
		return nil, nil
	}

	var blocks []projection.ContentBlock
	if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
		return nil, fmt.Errorf("parse content blocks: %w", err)
	}
	return blocks, nil
}

// promptRequest walks the user through wrapper selection and slot content.
func promptRequest(store *catalog.Store, req *orchestrator.Request) error {
	if req.Wrapper == "" && req.Markup == "" {
		ids := store.WrapperIDs()
		if len(ids) == 0 {
			return fmt.Errorf("catalog has no wrappers to choose from")
		}
		prompt := &survey.Select{
			Message: "Wrapper:",
			Options: ids,
			Description: func(value string, _ int) string {
				if cfg, ok := store.Wrapper(value); ok {
					return cfg.Description
				}
				return ""
			},
		}
		if err := survey.AskOne(prompt, &req.Wrapper); err != nil {
			return err
		}
	}

	cfg, ok := store.Wrapper(req.Wrapper)
	if !ok {
		// Inline markup: ask for default slot content only.
		var body string
		if err := survey.AskOne(&survey.Multiline{Message: "Content:"}, &body); err != nil {
			return err
		}
		if body != "" {
			req.Blocks = append(req.Blocks, projection.ContentBlock{Markup: body})
		}
		return nil
	}

	for _, selector := range slotOrder(cfg) {
		slot := cfg.Slots[selector]
		label := slot.Label
		if label == "" {
			if selector == "" {
				label = "Content"
			} else {
				label = selector
			}
		}
		message := fmt.Sprintf("%s:", label)
		if !slot.Required {
			message = fmt.Sprintf("%s (optional):", label)
		}

		var body string
		if err := survey.AskOne(&survey.Multiline{Message: message}, &body); err != nil {
			return err
		}
		if body == "" && !slot.Required {
			continue
		}
		req.Blocks = append(req.Blocks, projection.ContentBlock{Selector: selector, Markup: body})
	}
	return nil
}

func slotOrder(cfg catalog.WrapperConfig) []string {
	ids := make([]string, 0, len(cfg.Slots))
	for selector := range cfg.Slots {
		ids = append(ids, selector)
	}
	// Required slots first, then lexical.
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := cfg.Slots[ids[i]].Required, cfg.Slots[ids[j]].Required
		if ri != rj {
			return ri
		}
		return ids[i] < ids[j]
	})
	return ids
}

func printCatalog(svc *orchestrator.Orchestrator, store *catalog.Store) error {
	fmt.Println("wrappers:")
	for _, id := range store.WrapperIDs() {
		cfg, _ := store.Wrapper(id)
		line := "  " + id
		if cfg.Description != "" {
			line += ": " + cfg.Description
		}
		fmt.Println(line)
	}
	fmt.Println("templates:")
	for _, id := range store.TemplateIDs() {
		fmt.Println("  " + id)
	}
	fmt.Println("renderers:")
	for _, name := range svc.Renderers() {
		fmt.Println("  " + name)
	}
	return nil
}
