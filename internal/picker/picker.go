// Package picker prompts for a subset of rule files to deploy.
package picker

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/fenwick-labs/rulekit/internal/messages"
	"github.com/fenwick-labs/rulekit/internal/templates"
)

// UI selects rule files to deploy. Implementations other than HuhUI exist
// only in tests.
type UI interface {
	SelectRules(rules []templates.Rule) ([]string, error)
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct{}

// runFormFunc runs a huh form. Stubbed in tests.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

// SelectRules presents a multi-select of the bundled rules, all selected by
// default, and returns the chosen filenames.
func (HuhUI) SelectRules(rules []templates.Rule) ([]string, error) {
	options := make([]huh.Option[string], 0, len(rules))
	for _, rule := range rules {
		label := rule.File
		if rule.Description != "" {
			label = fmt.Sprintf("%s: %s", rule.File, rule.Description)
		}
		options = append(options, huh.NewOption(label, rule.File).Selected(true))
	}

	var selected []string
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Rule files to deploy").
			Options(options...).
			Value(&selected),
	))
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, errors.New(messages.PickerSelectionAborted)
		}
		return nil, fmt.Errorf(messages.PickerRunFormErrFmt, err)
	}
	if selected == nil {
		// Distinguish "deploy nothing" from deploy.Options' nil "deploy all".
		selected = []string{}
	}
	return selected, nil
}
