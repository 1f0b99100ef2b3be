// ============================================================================
// cleanfloat - Floating-point artifact cleaner
// ============================================================================
//
// Package:     document
// Description: YAML document cleaning on the yaml.v3 node tree
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package document

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msto63/cleanfloat/foundation/core/errors"
	"github.com/msto63/cleanfloat/foundation/core/log"
)

const yamlIndent = 2

// CleanYAML copies the YAML documents read from r to w with every float
// scalar cleaned. Comments, key order, anchors and quoted strings survive.
// Multi-document streams are supported.
func (c *Cleaner) CleanYAML(r io.Reader, w io.Writer) (Stats, error) {
	const op = "clean_yaml"

	timer := c.logger.StartTimer(op).WithLevel(log.LevelInfo)

	var stats Stats
	var docs []*yaml.Node

	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			docErr := errors.DocumentSyntax(op, err, "YAML")
			timer.StopWithError(docErr)
			return stats, docErr
		}
		var docStats Stats
		c.cleanNode(&doc, &docStats)
		c.logger.Trace("yaml document cleaned", log.Fields{
			"document": len(docs),
			"numbers":  docStats.Numbers,
			"cleaned":  docStats.Cleaned,
		})
		stats = stats.Add(docStats)
		docs = append(docs, &doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			docErr := errors.DocumentWrite(op, err)
			timer.StopWithError(docErr)
			return stats, docErr
		}
	}
	if err := enc.Close(); err != nil {
		docErr := errors.DocumentWrite(op, err)
		timer.StopWithError(docErr)
		return stats, docErr
	}

	timer.Stop(log.Fields{"numbers": stats.Numbers, "cleaned": stats.Cleaned, "documents": len(docs)})
	return stats, nil
}

// cleanNode walks the tree depth first. Alias nodes are skipped because
// their anchor is visited where it is defined.
func (c *Cleaner) cleanNode(node *yaml.Node, stats *Stats) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int":
			stats.Numbers++
		case "!!float":
			if literal, changed := c.cleanLiteral(node.Value, "yaml", stats); changed {
				node.Value = yamlFloat(literal)
			}
		}
	case yaml.AliasNode:
		return
	default:
		for _, child := range node.Content {
			c.cleanNode(child, stats)
		}
	}
}

// yamlFloat keeps an integral result recognizable as a float, 1 becomes 1.0
func yamlFloat(text string) string {
	if strings.ContainsAny(text, ".eE") {
		return text
	}
	return text + ".0"
}
