/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy_test

import (
	"errors"
	"strings"
	"sync/atomic"

	"dirpx.dev/accessor/apis"
	"dirpx.dev/accessor/config"
	"dirpx.dev/accessor/modgraph"
	"dirpx.dev/accessor/strategy"
)

const (
	selfModule   = "dirpx.dev/accessor"
	callerModule = "example.com/caller"
)

var errException = errors.New("exception")

type inner struct {
	depth int
}

type sample struct {
	inner
	test   string
	count  int
	ptr    *int
	hook   func(string) string
	Public string
}

type outer struct {
	*inner
}

// calls counts executions of method bodies across tests.
var calls atomic.Int64

func newSample(test string) *sample {
	if test == "exception" {
		panic(errException)
	}
	return &sample{test: test}
}

func newSampleErr(test string) (*sample, error) {
	if test == "exception" {
		return nil, errException
	}
	return &sample{test: test}, nil
}

func (s *sample) echo(value string) string {
	calls.Add(1)
	if value == "exception" {
		panic(errException)
	}
	return value
}

func (s *sample) echoErr(value string) (string, error) {
	if value == "exception" {
		return "", errException
	}
	return value, nil
}

func (s sample) current() string { return s.test }

func (s *sample) pair(a int, b string) (int, string) { return a, b }

func (s *sample) join(sep string, parts ...string) string { return strings.Join(parts, sep) }

func (s *sample) touch() { s.count++ }

func (s *sample) panicWith(v any) { panic(v) }

func (s *sample) Exported() string { return "exported:" + s.test }

func sum(xs ...int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// newModuleStrategy returns a module-aware accessor acting for callerModule
// with the given graph configuration.
func newModuleStrategy(opts ...config.Option) (apis.MemberAccessor, apis.ModuleGraph) {
	g := modgraph.New(config.NewConfig(opts...), modgraph.WithModules(selfModule))
	return strategy.NewModuleStrategy(g, callerModule), g
}

// accessors returns both strategies; they must be behaviorally indistinguishable.
func accessors() []apis.MemberAccessor {
	m, _ := newModuleStrategy()
	return []apis.MemberAccessor{strategy.NewReflectStrategy(), m}
}
