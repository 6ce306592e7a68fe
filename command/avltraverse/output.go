// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/bitmark-inc/avltraverse/configuration"
	"github.com/bitmark-inc/avltraverse/fault"
	"github.com/bitmark-inc/avltraverse/keysum"
)

const (
	emptyTree = "<EMPTY>"
)

// structured form of a result
type report struct {
	Traversal string   `json:"traversal"`
	Sum       int      `json:"sum"`
	Values    []string `json:"values"`
}

// write one traversal result in the selected format
func output(w io.Writer, format string, name string, result keysum.KeySum) error {

	r := report{
		Traversal: name,
		Sum:       result.Sum,
		Values:    result.Values,
	}
	if nil == r.Values {
		r.Values = []string{}
	}

	switch format {
	case configuration.FormatText:
		_, err := fmt.Fprintln(w, result.String())
		return err

	case configuration.FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if nil != err {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err

	case configuration.FormatYAML:
		b, err := yaml.Marshal(r)
		if nil != err {
			return err
		}
		_, err = w.Write(b)
		return err

	default:
		return fault.ErrInvalidFormat
	}
}

// marker for a tree without nodes, the same in every format
func outputEmpty(w io.Writer) error {
	_, err := fmt.Fprintln(w, emptyTree)
	return err
}
