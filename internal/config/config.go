/*
 * chess-ai-sub001 - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chess-ai-sub001 contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration values, either set
// by defaults or read from a TOML file, in the teacher's style
// (internal/config/config.go): a package-level Settings value populated
// once by Setup(), consulted by every subsystem that needs a default.
package config

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the configuration file, relative to the working
// directory. It may be overridden before calling Setup.
var ConfFile = "./config.toml"

// Settings is the global configuration, read from ConfFile if present,
// left at its defaults otherwise.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
	TT     ttConfiguration
	HTTP   httpConfiguration
}

type logConfiguration struct {
	Level string
}

type searchConfiguration struct {
	DefaultMillis int64
	SoftMillis    int64
	UseNullMove   bool
	NmpReduction  int
	UseLMR        bool
	UsePVS        bool
}

type evalConfiguration struct {
	DefaultEvaluator string
}

type ttConfiguration struct {
	SizeMB int
}

type httpConfiguration struct {
	Addr string
}

func init() {
	Settings.Log.Level = "INFO"

	Settings.Search.DefaultMillis = 5000
	Settings.Search.SoftMillis = 0
	Settings.Search.UseNullMove = true
	Settings.Search.NmpReduction = 2
	Settings.Search.UseLMR = true
	Settings.Search.UsePVS = true

	Settings.Eval.DefaultEvaluator = "classical-parametric"

	Settings.TT.SizeMB = 64

	Settings.HTTP.Addr = ":8080"
}

// Setup reads ConfFile if it exists and overlays it onto the defaults set
// in this package's init() functions. It is idempotent - repeated calls
// after the first are no-ops, mirroring the teacher's config.Setup guard.
func Setup() {
	if initialized {
		return
	}
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			log.Println("config: file found but could not be parsed, using defaults (", err, ")")
		}
	}
	initialized = true
}

// Reset clears the idempotency guard, for tests that need Setup to reread
// a different ConfFile.
func Reset() {
	initialized = false
}

// String renders the current settings via reflection, for diagnostics -
// mirrors the teacher's conf.String().
func (c *conf) String() string {
	var b strings.Builder
	for _, group := range []struct {
		name string
		v    interface{}
	}{
		{"Log", &c.Log},
		{"Search", &c.Search},
		{"Eval", &c.Eval},
		{"TT", &c.TT},
		{"HTTP", &c.HTTP},
	} {
		b.WriteString(group.name)
		b.WriteString(":\n")
		s := reflect.ValueOf(group.v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			b.WriteString(fmt.Sprintf("  %-20s %v\n", t.Field(i).Name, f.Interface()))
		}
	}
	return b.String()
}
