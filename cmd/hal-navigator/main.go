// Package main provides the CLI entrypoint for hal-navigator.
//
// hal-navigator decodes a HAL+JSON document against a YAML transcoder
// definition and prints the resulting parameter map, optionally listing the
// document's links with CURIE-expanded relations.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hal-navigator/definition"
	"hal-navigator/document"
	"hal-navigator/link"
)

func main() {
	rulesPath := flag.String("rules", "", "path to a YAML transcoder definition")
	docPath := flag.String("doc", "", "path to a HAL+JSON document")
	showLinks := flag.Bool("links", false, "also list the document's links")
	flag.Parse()

	if *rulesPath == "" || *docPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*rulesPath, *docPath, *showLinks); err != nil {
		fmt.Fprintln(os.Stderr, "hal-navigator:", err)
		os.Exit(1)
	}
}

func run(rulesPath, docPath string, showLinks bool) error {
	def, err := definition.LoadFile(rulesPath)
	if err != nil {
		return err
	}

	tr, err := definition.Build(def, nil)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}

	doc, err := document.Parse(data)
	if err != nil {
		return err
	}

	params, err := tr.Decode(doc)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(params)
	if err != nil {
		return err
	}

	fmt.Print(string(out))

	if showLinks {
		return printLinks(doc, def.LinkNamespaces())
	}

	return nil
}

func printLinks(doc *document.Document, namespaces link.Namespaces) error {
	links, err := link.FromDocument(doc)
	if err != nil {
		return err
	}

	for _, l := range links {
		for _, variant := range l.ExpandCurie(namespaces) {
			target, err := variant.ResolveTarget(nil)
			if err != nil {
				target = "(anonymous)"
			}

			fmt.Printf("%s -> %s\n", variant.Rel, target)
		}
	}

	return nil
}
