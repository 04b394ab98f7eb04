package htmldoc

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ErrCSSSyntax is flagged if a CSS fragment is incomplete: unbalanced braces
// or a declaration without a value. The douceur parser accepts such
// fragments leniently, so they are checked for explicitly.
var ErrCSSSyntax = errors.New("CSS fragment is incomplete")

// AppendCSS parses and validates a CSS fragment and appends its normalized
// text to the document's internal stylesheet. A fragment which does not
// parse, has unbalanced braces or carries valueless declarations is rejected
// with a wrapped error; the internal stylesheet is left untouched in that
// case.
//
// SetInternalCSS remains available for clients who want their style text
// emitted verbatim, without validation.
func (doc *Document) AppendCSS(fragment string) error {
	if strings.Count(fragment, "{") != strings.Count(fragment, "}") {
		return fmt.Errorf("cannot parse CSS fragment, braces are unbalanced: %w", ErrCSSSyntax)
	}
	sheet, err := parser.Parse(fragment)
	if err != nil {
		return fmt.Errorf("cannot parse CSS fragment: %w", err)
	}
	if err := checkRules(sheet.Rules); err != nil {
		return err
	}
	text := strings.TrimSpace(sheet.String())
	if text == "" {
		return nil
	}
	if doc.internalCSS == "" {
		doc.internalCSS = text
	} else {
		doc.internalCSS += "\n" + text
	}
	tracer().Debugf("appended %d CSS rule(s) to internal stylesheet", len(sheet.Rules))
	return nil
}

// checkRules walks a parsed rule set, including rules nested below at-rules,
// and rejects declarations the parser silently truncated.
func checkRules(rules []*css.Rule) error {
	for _, rule := range rules {
		for _, decl := range rule.Declarations {
			if strings.TrimSpace(decl.Property) == "" || strings.TrimSpace(decl.Value) == "" {
				return fmt.Errorf("declaration %q has no value: %w", decl.Property, ErrCSSSyntax)
			}
		}
		if err := checkRules(rule.Rules); err != nil {
			return err
		}
	}
	return nil
}
