package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pincraft"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	niche, err := pincraft.ParseNiche(c.Niche)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pincraft.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: run 'pincraft niches' to see supported niches")
		return err
	}

	result, err := deps.Pipeline.Run(deps.Ctx, pincraft.Request{
		URL:      c.URL,
		Niche:    niche,
		Insights: c.Insights,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pincraft.ErrorMessage(err))
		return err
	}

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	}

	if !result.AIGenerated {
		fmt.Fprintln(deps.Stderr, "AI assistant offline: using offline templates.")
	}
	writeText(deps.Stdout, result.Content)
	return nil
}

// writeText prints content in the plain layout meant for copy and paste.
func writeText(w io.Writer, content *pincraft.GeneratedContent) {
	fmt.Fprintln(w, "PIN TITLES:")
	for i, t := range content.PinTitles {
		fmt.Fprintf(w, "%d. %s\n", i+1, t.Title)
	}

	fmt.Fprintln(w, "\nDESCRIPTIONS:")
	for i, d := range content.Descriptions {
		fmt.Fprintf(w, "%d. %s\n", i+1, d.Description)
	}

	fmt.Fprintln(w, "\nHASHTAGS:")
	fmt.Fprintln(w, strings.Join(content.Hashtags.All(), " "))

	if len(content.StrategicInsights) > 0 {
		fmt.Fprintln(w, "\nINSIGHTS:")
		for _, s := range content.StrategicInsights {
			fmt.Fprintf(w, "- %s\n", s)
		}
	}
}
