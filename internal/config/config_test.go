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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsBeforeSetup(t *testing.T) {
	assert.Equal(t, "classical-parametric", Settings.Eval.DefaultEvaluator)
	assert.Equal(t, 64, Settings.TT.SizeMB)
	assert.True(t, Settings.Search.UseNullMove)
}

func TestSetupOverlaysTomlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	toml := "[TT]\nSizeMB = 128\n\n[Eval]\nDefaultEvaluator = \"material\"\n"
	require.NoError(t, os.WriteFile(path, []byte(toml), 0644))

	ConfFile = path
	Reset()
	defer func() {
		ConfFile = "./config.toml"
		Reset()
	}()
	Setup()

	assert.Equal(t, 128, Settings.TT.SizeMB)
	assert.Equal(t, "material", Settings.Eval.DefaultEvaluator)
}

func TestSetupIsIdempotent(t *testing.T) {
	Reset()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")
	Setup()
	Settings.TT.SizeMB = 999
	Setup()
	assert.Equal(t, 999, Settings.TT.SizeMB, "second Setup call must be a no-op while initialized")
}

func TestConfStringIncludesAllGroups(t *testing.T) {
	s := Settings.String()
	for _, group := range []string{"Log:", "Search:", "Eval:", "TT:", "HTTP:"} {
		assert.Contains(t, s, group)
	}
}
