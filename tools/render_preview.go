package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/render"
)

// Renders a resume JSON file to HTML for eyeballing a template without
// starting the server or Chrome.
func main() {
	in := flag.String("in", "resume.json", "resume document JSON file")
	tpl := flag.String("template", "modern", "template name (modern|classic|creative)")
	out := flag.String("out", "preview.html", "output HTML file")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(2)
	}
	doc := model.NewResumeDocument()
	if err := json.Unmarshal(b, doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	html, err := render.NewRenderer().Render(doc, *tpl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
